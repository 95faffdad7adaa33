// Package api assembles the API module with all domain systems and route registration.
package api

import (
	"fmt"

	"github.com/JaimeStill/blueprint/internal/config"
	"github.com/JaimeStill/blueprint/internal/infrastructure"
	"github.com/JaimeStill/blueprint/pkg/middleware"
	"github.com/JaimeStill/blueprint/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	domain, err := NewDomain(runtime)
	if err != nil {
		return nil, err
	}

	registered := groups(domain, runtime)

	docs, err := specGroup(cfg, registered)
	if err != nil {
		return nil, fmt.Errorf("openapi: %w", err)
	}

	m := module.FromGroups(cfg.API.BasePath, append(registered, docs)...)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))
	m.Use(middleware.MaxBytes(cfg.API.MaxRequestSizeBytes()))

	runtime.Logger.Info("api routes registered", "routes", m.Patterns())
	return m, nil
}
