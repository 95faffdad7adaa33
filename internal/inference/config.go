package inference

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

// FallbackAPIKeyEnv is consulted for the credential when the configured
// environment variable is unset.
const FallbackAPIKeyEnv = "GEMINI_API_KEY"

// Config holds remote model parameters. BaseURL overrides the Gemini API
// endpoint and is empty in normal use.
type Config struct {
	APIKey          string  `toml:"api_key"`
	Model           string  `toml:"model"`
	Timeout         string  `toml:"timeout"`
	Temperature     float32 `toml:"temperature"`
	TopK            float32 `toml:"top_k"`
	TopP            float32 `toml:"top_p"`
	MaxOutputTokens int32   `toml:"max_output_tokens"`
	BaseURL         string  `toml:"base_url"`
}

// Env maps config fields to environment variable names for override injection.
type Env struct {
	APIKey          string
	Model           string
	Timeout         string
	Temperature     string
	TopK            string
	TopP            string
	MaxOutputTokens string
	BaseURL         string
}

// Enabled reports whether a credential is present.
func (c *Config) Enabled() bool {
	return c.APIKey != ""
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *Config) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
// A missing API key is not an error: the adapter reports ErrConfiguration
// per call instead.
func (c *Config) Finalize(env *Env) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	if c.APIKey == "" {
		c.APIKey = os.Getenv(FallbackAPIKeyEnv)
	}
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.Temperature != 0 {
		c.Temperature = overlay.Temperature
	}
	if overlay.TopK != 0 {
		c.TopK = overlay.TopK
	}
	if overlay.TopP != 0 {
		c.TopP = overlay.TopP
	}
	if overlay.MaxOutputTokens != 0 {
		c.MaxOutputTokens = overlay.MaxOutputTokens
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
}

func (c *Config) loadDefaults() {
	if c.Model == "" {
		c.Model = "gemini-2.0-flash"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.3
	}
	if c.TopK == 0 {
		c.TopK = 40
	}
	if c.TopP == 0 {
		c.TopP = 0.95
	}
	if c.MaxOutputTokens == 0 {
		c.MaxOutputTokens = 2048
	}
}

func (c *Config) loadEnv(env *Env) {
	if env.APIKey != "" {
		if v := os.Getenv(env.APIKey); v != "" {
			c.APIKey = v
		}
	}
	if env.Model != "" {
		if v := os.Getenv(env.Model); v != "" {
			c.Model = v
		}
	}
	if env.Timeout != "" {
		if v := os.Getenv(env.Timeout); v != "" {
			c.Timeout = v
		}
	}
	if env.Temperature != "" {
		if v := os.Getenv(env.Temperature); v != "" {
			if f, err := strconv.ParseFloat(v, 32); err == nil {
				c.Temperature = float32(f)
			}
		}
	}
	if env.TopK != "" {
		if v := os.Getenv(env.TopK); v != "" {
			if f, err := strconv.ParseFloat(v, 32); err == nil {
				c.TopK = float32(f)
			}
		}
	}
	if env.TopP != "" {
		if v := os.Getenv(env.TopP); v != "" {
			if f, err := strconv.ParseFloat(v, 32); err == nil {
				c.TopP = float32(f)
			}
		}
	}
	if env.MaxOutputTokens != "" {
		if v := os.Getenv(env.MaxOutputTokens); v != "" {
			if n, err := strconv.ParseInt(v, 10, 32); err == nil {
				c.MaxOutputTokens = int32(n)
			}
		}
	}
	if env.BaseURL != "" {
		if v := os.Getenv(env.BaseURL); v != "" {
			c.BaseURL = v
		}
	}
}

func (c *Config) validate() error {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if d <= 0 {
		return fmt.Errorf("timeout must be positive: %s", c.Timeout)
	}
	if c.Temperature < 0 || c.Temperature > 2 {
		return fmt.Errorf("temperature out of range [0, 2]: %v", c.Temperature)
	}
	if c.TopP < 0 || c.TopP > 1 {
		return fmt.Errorf("top_p out of range [0, 1]: %v", c.TopP)
	}
	if c.MaxOutputTokens < 1 {
		return fmt.Errorf("invalid max_output_tokens: %d", c.MaxOutputTokens)
	}
	if c.BaseURL != "" {
		if u, err := url.Parse(c.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("invalid base_url: %q", c.BaseURL)
		}
	}
	return nil
}
