package api

import (
	"net/http"

	"github.com/sanchika-app/sanchika/internal/config"
	"github.com/sanchika-app/sanchika/internal/images"
	"github.com/sanchika-app/sanchika/internal/validation"
	"github.com/sanchika-app/sanchika/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	domain *Domain,
	cfg *config.Config,
	runtime *Runtime,
) {
	routes.Register(
		mux,
		domain.Blocks.Handler().Routes(),
		domain.Contents.Handler(cfg.API.MaxBodySizeBytes()).Routes(),
		images.NewHandler(domain.Resolver, runtime.Logger).Routes(),
		validation.NewHandler(domain.Validator, runtime.Logger).Routes(),
	)
}
