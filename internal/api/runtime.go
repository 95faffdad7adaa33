package api

import (
	"github.com/JaimeStill/blueprint/internal/config"
	"github.com/JaimeStill/blueprint/internal/infrastructure"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	History         config.HistoryConfig
	SessionCapacity int
	MaxTextLength   int
	MaxListSize     int32
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	scoped := *infra
	scoped.Logger = infra.Logger.With("module", "api")

	return &Runtime{
		Infrastructure:  &scoped,
		History:         cfg.History,
		SessionCapacity: cfg.API.SessionCapacity,
		MaxTextLength:   cfg.API.MaxTextLength,
		MaxListSize:     cfg.Storage.MaxListSize,
	}
}
