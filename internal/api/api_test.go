package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sanchika-app/sanchika/internal/api"
	"github.com/sanchika-app/sanchika/internal/config"
	"github.com/sanchika-app/sanchika/internal/infrastructure"
	"github.com/sanchika-app/sanchika/pkg/database"
	"github.com/sanchika-app/sanchika/pkg/middleware"
	"github.com/sanchika-app/sanchika/pkg/module"
	"github.com/sanchika-app/sanchika/pkg/openapi"
	"github.com/sanchika-app/sanchika/pkg/pagination"
	"github.com/sanchika-app/sanchika/pkg/throttle"
)

func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:            "0.0.0.0",
			Port:            8080,
			ReadTimeout:     "1m",
			WriteTimeout:    "5m",
			ShutdownTimeout: "30s",
		},
		Database: database.Config{
			Host:            "localhost",
			Port:            5432,
			Name:            "sanchika",
			User:            "sanchika",
			Password:        "sanchika",
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: "15m",
			ConnTimeout:     "5s",
		},
		API: config.APIConfig{
			BasePath:    "/api",
			MaxBodySize: "10MB",
			CORS: middleware.CORSConfig{
				Enabled: false,
			},
			OpenAPI: openapi.Config{
				Title:       "Sanchika API",
				Description: "Telugu short-form editorial content pipeline.",
			},
			Pagination: pagination.Config{
				DefaultPageSize: 20,
				MaxPageSize:     100,
			},
		},
		Pipeline: config.PipelineConfig{
			BatchDelay: "500ms",
			Thresholds: config.ThresholdsConfig{
				Ready:      85,
				Refinement: 70,
				AIHelp:     50,
			},
			Throttle: throttle.Config{
				RequestsPerMinute: 60,
				Burst:             5,
			},
		},
		Images: config.ImagesConfig{
			CacheSweepMaxAge: "168h",
			Throttle: throttle.Config{
				RequestsPerMinute: 60,
				Burst:             5,
			},
		},
		ShutdownTimeout: "30s",
		Version:         "0.1.0",
	}
}

func setupInfra(t *testing.T) *infrastructure.Infrastructure {
	t.Helper()
	infra, err := infrastructure.New(validConfig())
	if err != nil {
		t.Fatalf("infrastructure.New() error = %v", err)
	}
	return infra
}

func TestNewModule(t *testing.T) {
	cfg := validConfig()
	infra := setupInfra(t)

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	if m.Prefix() != "/api" {
		t.Errorf("prefix: got %s, want /api", m.Prefix())
	}
}

func TestNewRuntime(t *testing.T) {
	cfg := validConfig()
	infra := setupInfra(t)

	runtime := api.NewRuntime(cfg, infra)

	if runtime.Pagination.DefaultPageSize != 20 {
		t.Errorf("pagination default page size: got %d, want 20", runtime.Pagination.DefaultPageSize)
	}
	if runtime.Pagination.MaxPageSize != 100 {
		t.Errorf("pagination max page size: got %d, want 100", runtime.Pagination.MaxPageSize)
	}
	if runtime.Pipeline.Thresholds.Ready != 85 {
		t.Errorf("ready threshold: got %d, want 85", runtime.Pipeline.Thresholds.Ready)
	}
	if runtime.Logger == nil {
		t.Error("runtime logger is nil")
	}
	if runtime.Database == nil {
		t.Error("runtime database is nil")
	}
	if runtime.Completion == nil {
		t.Error("runtime completion is nil")
	}
	if runtime.Lifecycle == nil {
		t.Error("runtime lifecycle is nil")
	}
}

func TestNewDomain(t *testing.T) {
	cfg := validConfig()
	infra := setupInfra(t)
	runtime := api.NewRuntime(cfg, infra)

	domain := api.NewDomain(runtime)
	if domain == nil {
		t.Fatal("NewDomain() returned nil")
	}
	if domain.Blocks == nil {
		t.Error("Blocks system is nil")
	}
	if domain.Contents == nil {
		t.Error("Contents system is nil")
	}
	if domain.Resolver == nil {
		t.Error("image resolver is nil")
	}
	if domain.Validator == nil {
		t.Error("validator is nil")
	}
}

func TestOpenAPISpec(t *testing.T) {
	cfg := validConfig()
	infra := setupInfra(t)

	m, err := api.NewModule(cfg, infra)
	if err != nil {
		t.Fatalf("NewModule() error = %v", err)
	}

	router := module.NewRouter()
	router.Mount(m)

	server := httptest.NewServer(router)
	defer server.Close()

	res, err := http.Get(server.URL + "/api/openapi.json")
	if err != nil {
		t.Fatalf("GET /api/openapi.json error = %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d, want %d", res.StatusCode, http.StatusOK)
	}

	var spec struct {
		OpenAPI string `json:"openapi"`
		Info    struct {
			Title   string `json:"title"`
			Version string `json:"version"`
		} `json:"info"`
		Paths map[string]json.RawMessage `json:"paths"`
	}
	if err := json.NewDecoder(res.Body).Decode(&spec); err != nil {
		t.Fatalf("decode spec: %v", err)
	}

	if spec.Info.Title != "Sanchika API" {
		t.Errorf("title: got %s, want Sanchika API", spec.Info.Title)
	}
	if spec.Info.Version != "0.1.0" {
		t.Errorf("version: got %s, want 0.1.0", spec.Info.Version)
	}
	for _, path := range []string{"/contents/process", "/blocks", "/images/resolve", "/validation/validate"} {
		if _, ok := spec.Paths[path]; !ok {
			t.Errorf("spec missing path %s", path)
		}
	}
}
