package config

import (
	"fmt"
	"os"

	"github.com/sanchika-app/sanchika/pkg/formatting"
	"github.com/sanchika-app/sanchika/pkg/middleware"
	"github.com/sanchika-app/sanchika/pkg/openapi"
	"github.com/sanchika-app/sanchika/pkg/pagination"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "SANCHIKA_CORS_ENABLED",
	Origins:          "SANCHIKA_CORS_ORIGINS",
	AllowedMethods:   "SANCHIKA_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "SANCHIKA_CORS_ALLOWED_HEADERS",
	AllowCredentials: "SANCHIKA_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "SANCHIKA_CORS_MAX_AGE",
}

var openapiEnv = &openapi.ConfigEnv{
	Title:       "SANCHIKA_OPENAPI_TITLE",
	Description: "SANCHIKA_OPENAPI_DESCRIPTION",
}

var paginationEnv = &pagination.ConfigEnv{
	DefaultPageSize: "SANCHIKA_PAGINATION_DEFAULT_PAGE_SIZE",
	MaxPageSize:     "SANCHIKA_PAGINATION_MAX_PAGE_SIZE",
}

// APIConfig holds API routing, CORS, and pagination settings.
type APIConfig struct {
	BasePath    string                `toml:"base_path"`
	MaxBodySize string                `toml:"max_body_size"`
	CORS        middleware.CORSConfig `toml:"cors"`
	OpenAPI     openapi.Config        `toml:"openapi"`
	Pagination  pagination.Config     `toml:"pagination"`
}

func (c *APIConfig) MaxBodySizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxBodySize)
	if err != nil {
		return 10 * 1024 * 1024 // 10MB fallback
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS and pagination configs.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openapiEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	if err := c.Pagination.Finalize(paginationEnv); err != nil {
		return fmt.Errorf("pagination: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxBodySize != "" {
		c.MaxBodySize = overlay.MaxBodySize
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
	c.Pagination.Merge(&overlay.Pagination)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxBodySize == "" {
		c.MaxBodySize = "10MB"
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv("SANCHIKA_API_BASE_PATH"); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv("SANCHIKA_API_MAX_BODY_SIZE"); v != "" {
		c.MaxBodySize = v
	}
}
