package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/sanchika-app/sanchika/pkg/completion"
	"github.com/sanchika-app/sanchika/pkg/database"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvSanchikaEnv             = "SANCHIKA_ENV"
	EnvSanchikaShutdownTimeout = "SANCHIKA_SHUTDOWN_TIMEOUT"
	EnvSanchikaVersion         = "SANCHIKA_VERSION"
)

var databaseEnv = &database.Env{
	Host:            "SANCHIKA_DB_HOST",
	Port:            "SANCHIKA_DB_PORT",
	Name:            "SANCHIKA_DB_NAME",
	User:            "SANCHIKA_DB_USER",
	Password:        "SANCHIKA_DB_PASSWORD",
	SSLMode:         "SANCHIKA_DB_SSL_MODE",
	MaxOpenConns:    "SANCHIKA_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "SANCHIKA_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "SANCHIKA_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "SANCHIKA_DB_CONN_TIMEOUT",
}

var completionEnv = &completion.Env{
	BaseURL:     "SANCHIKA_COMPLETION_BASE_URL",
	Model:       "SANCHIKA_COMPLETION_MODEL",
	Token:       "SANCHIKA_COMPLETION_TOKEN",
	Temperature: "SANCHIKA_COMPLETION_TEMPERATURE",
}

// Config is the root configuration for the Sanchika service.
type Config struct {
	Server          ServerConfig      `toml:"server"`
	Database        database.Config   `toml:"database"`
	API             APIConfig         `toml:"api"`
	Completion      completion.Config `toml:"completion"`
	Pipeline        PipelineConfig    `toml:"pipeline"`
	Images          ImagesConfig      `toml:"images"`
	ShutdownTimeout string            `toml:"shutdown_timeout"`
	Version         string            `toml:"version"`
}

// Env returns the SANCHIKA_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvSanchikaEnv); env != "" {
		return env
	}
	return "local"
}

// ShutdownTimeoutDuration returns ShutdownTimeout as a time.Duration.
func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Load reads the base config (if present), applies any environment overlay,
// and finalizes all values. If no config.toml exists, defaults and environment
// variables provide all configuration.
func Load() (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(BaseConfigFile); err == nil {
		loaded, err := load(BaseConfigFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sub-configs.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.API.Merge(&overlay.API)
	c.Completion.Merge(&overlay.Completion)
	c.Pipeline.Merge(&overlay.Pipeline)
	c.Images.Merge(&overlay.Images)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Completion.Finalize(completionEnv); err != nil {
		return fmt.Errorf("completion: %w", err)
	}
	if err := c.Pipeline.Finalize(); err != nil {
		return fmt.Errorf("pipeline: %w", err)
	}
	if err := c.Images.Finalize(); err != nil {
		return fmt.Errorf("images: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvSanchikaShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvSanchikaVersion); v != "" {
		c.Version = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	return &cfg, nil
}

func overlayPath() string {
	if env := os.Getenv(EnvSanchikaEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
