// Package config loads the service configuration from TOML files with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/JaimeStill/blueprint/internal/inference"
	"github.com/JaimeStill/blueprint/pkg/database"
	"github.com/JaimeStill/blueprint/pkg/storage"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvBlueprintEnv             = "BLUEPRINT_ENV"
	EnvBlueprintShutdownTimeout = "BLUEPRINT_SHUTDOWN_TIMEOUT"
	EnvBlueprintVersion         = "BLUEPRINT_VERSION"
)

var databaseEnv = &database.Env{
	DSN:             "BLUEPRINT_DB_DSN",
	Host:            "BLUEPRINT_DB_HOST",
	Port:            "BLUEPRINT_DB_PORT",
	Name:            "BLUEPRINT_DB_NAME",
	User:            "BLUEPRINT_DB_USER",
	Password:        "BLUEPRINT_DB_PASSWORD",
	SSLMode:         "BLUEPRINT_DB_SSL_MODE",
	MaxOpenConns:    "BLUEPRINT_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "BLUEPRINT_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "BLUEPRINT_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "BLUEPRINT_DB_CONN_TIMEOUT",
}

var storageEnv = &storage.Env{
	Provider:         "BLUEPRINT_STORAGE_PROVIDER",
	ContainerName:    "BLUEPRINT_STORAGE_CONTAINER_NAME",
	ConnectionString: "BLUEPRINT_STORAGE_CONNECTION_STRING",
	Endpoint:         "BLUEPRINT_STORAGE_ENDPOINT",
	Region:           "BLUEPRINT_STORAGE_REGION",
	AccessKey:        "BLUEPRINT_STORAGE_ACCESS_KEY",
	SecretKey:        "BLUEPRINT_STORAGE_SECRET_KEY",
	UseSSL:           "BLUEPRINT_STORAGE_USE_SSL",
	MaxListSize:      "BLUEPRINT_STORAGE_MAX_LIST_SIZE",
}

var inferenceEnv = &inference.Env{
	APIKey:          "BLUEPRINT_INFERENCE_API_KEY",
	Model:           "BLUEPRINT_INFERENCE_MODEL",
	Timeout:         "BLUEPRINT_INFERENCE_TIMEOUT",
	Temperature:     "BLUEPRINT_INFERENCE_TEMPERATURE",
	TopK:            "BLUEPRINT_INFERENCE_TOP_K",
	TopP:            "BLUEPRINT_INFERENCE_TOP_P",
	MaxOutputTokens: "BLUEPRINT_INFERENCE_MAX_OUTPUT_TOKENS",
	BaseURL:         "BLUEPRINT_INFERENCE_BASE_URL",
}

// Config is the root configuration for the Blueprint service.
type Config struct {
	Server          ServerConfig     `toml:"server"`
	Database        database.Config  `toml:"database"`
	Storage         storage.Config   `toml:"storage"`
	API             APIConfig        `toml:"api"`
	Inference       inference.Config `toml:"inference"`
	History         HistoryConfig    `toml:"history"`
	Logging         LoggingConfig    `toml:"logging"`
	ShutdownTimeout string           `toml:"shutdown_timeout"`
	Version         string           `toml:"version"`
}

// Env returns the BLUEPRINT_ENV value, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvBlueprintEnv); env != "" {
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
	c.Storage.Merge(&overlay.Storage)
	c.API.Merge(&overlay.API)
	c.Inference.Merge(&overlay.Inference)
	c.History.Merge(&overlay.History)
	c.Logging.Merge(&overlay.Logging)
}

func (c *Config) finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Logging.Finalize(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.History.Finalize(); err != nil {
		return fmt.Errorf("history: %w", err)
	}
	if c.History.UsesDatabase() {
		if err := c.Database.Finalize(databaseEnv); err != nil {
			return fmt.Errorf("database: %w", err)
		}
	}
	if c.History.ExportEnabled() {
		if err := c.Storage.Finalize(storageEnv); err != nil {
			return fmt.Errorf("storage: %w", err)
		}
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Inference.Finalize(inferenceEnv); err != nil {
		return fmt.Errorf("inference: %w", err)
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
	if v := os.Getenv(EnvBlueprintShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvBlueprintVersion); v != "" {
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
	if env := os.Getenv(EnvBlueprintEnv); env != "" {
		path := fmt.Sprintf(OverlayConfigPattern, env)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
