package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/JaimeStill/blueprint/pkg/formatting"
	"github.com/JaimeStill/blueprint/pkg/middleware"
	"github.com/JaimeStill/blueprint/pkg/openapi"
)

const (
	EnvAPIBasePath        = "BLUEPRINT_API_BASE_PATH"
	EnvAPIMaxRequestSize  = "BLUEPRINT_API_MAX_REQUEST_SIZE"
	EnvAPISessionCapacity = "BLUEPRINT_API_SESSION_CAPACITY"
	EnvAPIMaxTextLength   = "BLUEPRINT_API_MAX_TEXT_LENGTH"
)

var corsEnv = &middleware.CORSEnv{
	Enabled:          "BLUEPRINT_CORS_ENABLED",
	Origins:          "BLUEPRINT_CORS_ORIGINS",
	AllowedMethods:   "BLUEPRINT_CORS_ALLOWED_METHODS",
	AllowedHeaders:   "BLUEPRINT_CORS_ALLOWED_HEADERS",
	AllowCredentials: "BLUEPRINT_CORS_ALLOW_CREDENTIALS",
	MaxAge:           "BLUEPRINT_CORS_MAX_AGE",
}

var openAPIEnv = &openapi.ConfigEnv{
	Title:       "BLUEPRINT_OPENAPI_TITLE",
	Description: "BLUEPRINT_OPENAPI_DESCRIPTION",
}

// APIConfig holds API routing, request and text limits, sessions, CORS, and
// OpenAPI metadata.
type APIConfig struct {
	BasePath        string                `toml:"base_path"`
	MaxRequestSize  string                `toml:"max_request_size"`
	SessionCapacity int                   `toml:"session_capacity"`
	MaxTextLength   int                   `toml:"max_text_length"`
	CORS            middleware.CORSConfig `toml:"cors"`
	OpenAPI         openapi.Config        `toml:"openapi"`
}

// MaxRequestSizeBytes returns MaxRequestSize in bytes. Finalize guarantees
// the value parses.
func (c *APIConfig) MaxRequestSizeBytes() int64 {
	size, err := formatting.ParseBytes(c.MaxRequestSize)
	if err != nil {
		return 1 << 20
	}
	return size
}

// Finalize applies defaults, environment variable overrides, and validation
// for the API config and its nested CORS config.
func (c *APIConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.CORS.Finalize(corsEnv); err != nil {
		return fmt.Errorf("cors: %w", err)
	}
	if err := c.OpenAPI.Finalize(openAPIEnv); err != nil {
		return fmt.Errorf("openapi: %w", err)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay across nested configs.
func (c *APIConfig) Merge(overlay *APIConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxRequestSize != "" {
		c.MaxRequestSize = overlay.MaxRequestSize
	}
	if overlay.SessionCapacity != 0 {
		c.SessionCapacity = overlay.SessionCapacity
	}
	if overlay.MaxTextLength != 0 {
		c.MaxTextLength = overlay.MaxTextLength
	}

	c.CORS.Merge(&overlay.CORS)
	c.OpenAPI.Merge(&overlay.OpenAPI)
}

func (c *APIConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = "/api"
	}
	if c.MaxRequestSize == "" {
		c.MaxRequestSize = "1MB"
	}
	if c.SessionCapacity == 0 {
		c.SessionCapacity = 1024
	}
	if c.MaxTextLength == 0 {
		c.MaxTextLength = 1000
	}
}

func (c *APIConfig) loadEnv() {
	if v := os.Getenv(EnvAPIBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvAPIMaxRequestSize); v != "" {
		c.MaxRequestSize = v
	}
	if v := os.Getenv(EnvAPISessionCapacity); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.SessionCapacity = n
		}
	}
	if v := os.Getenv(EnvAPIMaxTextLength); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxTextLength = n
		}
	}
}

func (c *APIConfig) validate() error {
	if size, err := formatting.ParseBytes(c.MaxRequestSize); err != nil || size <= 0 {
		return fmt.Errorf("invalid max_request_size: %q", c.MaxRequestSize)
	}
	if c.SessionCapacity < 1 {
		return fmt.Errorf("session_capacity must be at least 1: %d", c.SessionCapacity)
	}
	if c.MaxTextLength < 1 {
		return fmt.Errorf("max_text_length must be at least 1: %d", c.MaxTextLength)
	}
	return nil
}
