package images

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sanchika-app/sanchika/internal/analysis"
	"github.com/sanchika-app/sanchika/pkg/handlers"
	"github.com/sanchika-app/sanchika/pkg/routes"
)

// Handler provides HTTP endpoints for image resolution.
type Handler struct {
	resolver *Resolver
	logger   *slog.Logger
}

// ValidateRequest is the body for the dimension validation endpoint.
type ValidateRequest struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NewHandler creates a Handler with the given resolver and logger.
func NewHandler(resolver *Resolver, logger *slog.Logger) *Handler {
	return &Handler{
		resolver: resolver,
		logger:   logger.With("handler", "images"),
	}
}

// Routes returns the route group definition for image endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/images",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/resolve", Handler: h.Resolve},
			{Method: "POST", Pattern: "/validate", Handler: h.Validate},
		},
	}
}

// Resolve looks up an image for the query and category parameters. A missing
// query is a bad request; resolution itself never fails, falling back to a
// category placeholder when no provider responds.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errors.New("query parameter is required"))
		return
	}

	category := analysis.NormalizeCategory(r.URL.Query().Get("category"))

	result := h.resolver.Resolve(r.Context(), query, category)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Validate checks candidate image dimensions against the publishing
// requirements.
func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ValidateDimensions(req.Width, req.Height))
}
