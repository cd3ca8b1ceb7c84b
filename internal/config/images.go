package config

import (
	"fmt"
	"os"
	"time"

	"github.com/sanchika-app/sanchika/pkg/throttle"
)

const (
	EnvImagesWikiBaseURL      = "SANCHIKA_IMAGES_WIKI_BASE_URL"
	EnvImagesOpenverseBaseURL = "SANCHIKA_IMAGES_OPENVERSE_BASE_URL"
	EnvImagesCacheSweepMaxAge = "SANCHIKA_IMAGES_CACHE_SWEEP_MAX_AGE"
)

var imagesThrottleEnv = &throttle.Env{
	RequestsPerMinute: "SANCHIKA_IMAGES_THROTTLE_RPM",
	Burst:             "SANCHIKA_IMAGES_THROTTLE_BURST",
}

// ImagesConfig holds image provider endpoints and cache retention settings.
// Empty base URLs select the public API endpoints.
type ImagesConfig struct {
	WikiBaseURL      string          `toml:"wiki_base_url"`
	OpenverseBaseURL string          `toml:"openverse_base_url"`
	CacheSweepMaxAge string          `toml:"cache_sweep_max_age"`
	Throttle         throttle.Config `toml:"throttle"`
}

// CacheSweepMaxAgeDuration returns CacheSweepMaxAge as a time.Duration.
func (c *ImagesConfig) CacheSweepMaxAgeDuration() time.Duration {
	d, _ := time.ParseDuration(c.CacheSweepMaxAge)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *ImagesConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.Throttle.Finalize(imagesThrottleEnv); err != nil {
		return fmt.Errorf("throttle: %w", err)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *ImagesConfig) Merge(overlay *ImagesConfig) {
	if overlay.WikiBaseURL != "" {
		c.WikiBaseURL = overlay.WikiBaseURL
	}
	if overlay.OpenverseBaseURL != "" {
		c.OpenverseBaseURL = overlay.OpenverseBaseURL
	}
	if overlay.CacheSweepMaxAge != "" {
		c.CacheSweepMaxAge = overlay.CacheSweepMaxAge
	}
	c.Throttle.Merge(&overlay.Throttle)
}

func (c *ImagesConfig) loadDefaults() {
	if c.CacheSweepMaxAge == "" {
		c.CacheSweepMaxAge = "168h"
	}
}

func (c *ImagesConfig) loadEnv() {
	if v := os.Getenv(EnvImagesWikiBaseURL); v != "" {
		c.WikiBaseURL = v
	}
	if v := os.Getenv(EnvImagesOpenverseBaseURL); v != "" {
		c.OpenverseBaseURL = v
	}
	if v := os.Getenv(EnvImagesCacheSweepMaxAge); v != "" {
		c.CacheSweepMaxAge = v
	}
}

func (c *ImagesConfig) validate() error {
	if _, err := time.ParseDuration(c.CacheSweepMaxAge); err != nil {
		return fmt.Errorf("invalid cache_sweep_max_age: %w", err)
	}
	return nil
}
