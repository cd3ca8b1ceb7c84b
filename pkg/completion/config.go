package completion

import "os"

// Config holds text-completion provider settings.
type Config struct {
	BaseURL     string  `toml:"base_url"`
	Model       string  `toml:"model"`
	Token       string  `toml:"token"`
	Temperature float64 `toml:"temperature"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	BaseURL     string
	Model       string
	Token       string
	Temperature string
}

// Configured reports whether enough settings exist to build a live client.
// A custom base URL without a token is valid for local OpenAI-compatible servers.
func (c *Config) Configured() bool {
	return c.Token != "" || c.BaseURL != ""
}

func (c *Config) token() string {
	if c.Token == "" {
		// langchaingo requires a token even for keyless local endpoints
		return "unused"
	}
	return c.Token
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-4o-mini"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.7
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.Token != "" {
		if v := os.Getenv(env.Token); v != "" {
			c.Token = v
		}
	}
}
