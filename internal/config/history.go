package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	HistoryPostgres = "postgres"
	HistoryMemory   = "memory"
	HistoryDisabled = "disabled"

	EnvHistoryBackend   = "BLUEPRINT_HISTORY_BACKEND"
	EnvHistoryRetention = "BLUEPRINT_HISTORY_RETENTION"
	EnvHistoryExport    = "BLUEPRINT_HISTORY_EXPORT"
)

// HistoryConfig selects where resolutions are recorded and how many are kept.
// Export controls whether diagrams are also written to blob storage; it is
// a pointer so an overlay can switch it off.
type HistoryConfig struct {
	Backend   string `toml:"backend"`
	Retention int    `toml:"retention"`
	Export    *bool  `toml:"export"`
}

// UsesDatabase reports whether the PostgreSQL backend is selected.
func (c *HistoryConfig) UsesDatabase() bool {
	return c.Backend == HistoryPostgres
}

// ExportEnabled reports whether diagram export is on and history is recorded.
func (c *HistoryConfig) ExportEnabled() bool {
	return c.Backend != HistoryDisabled && c.Export != nil && *c.Export
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *HistoryConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *HistoryConfig) Merge(overlay *HistoryConfig) {
	if overlay.Backend != "" {
		c.Backend = overlay.Backend
	}
	if overlay.Retention != 0 {
		c.Retention = overlay.Retention
	}
	if overlay.Export != nil {
		export := *overlay.Export
		c.Export = &export
	}
}

func (c *HistoryConfig) loadDefaults() {
	if c.Backend == "" {
		c.Backend = HistoryPostgres
	}
	if c.Retention == 0 {
		c.Retention = 5
	}
}

func (c *HistoryConfig) loadEnv() {
	if v := os.Getenv(EnvHistoryBackend); v != "" {
		c.Backend = v
	}
	if v := os.Getenv(EnvHistoryRetention); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Retention = n
		}
	}
	if v := os.Getenv(EnvHistoryExport); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Export = &b
		}
	}
}

func (c *HistoryConfig) validate() error {
	switch c.Backend {
	case HistoryPostgres, HistoryMemory, HistoryDisabled:
	default:
		return fmt.Errorf("unsupported backend: %s", c.Backend)
	}
	if c.Retention < 1 {
		return fmt.Errorf("retention must be at least 1: %d", c.Retention)
	}
	return nil
}
