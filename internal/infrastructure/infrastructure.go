// Package infrastructure provides core service initialization for application startup.
// It assembles the shared dependencies (logging, database, storage, catalog,
// and the resolution pipeline) that domain systems require.
package infrastructure

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/JaimeStill/blueprint/internal/catalog"
	"github.com/JaimeStill/blueprint/internal/config"
	"github.com/JaimeStill/blueprint/internal/extractor"
	"github.com/JaimeStill/blueprint/internal/inference"
	"github.com/JaimeStill/blueprint/internal/resolver"
	"github.com/JaimeStill/blueprint/pkg/database"
	"github.com/JaimeStill/blueprint/pkg/lifecycle"
	"github.com/JaimeStill/blueprint/pkg/storage"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil unless history uses PostgreSQL; Storage is nil unless
// diagram export is enabled.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
	Catalog   *catalog.Catalog
	Resolver  *resolver.Resolver
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	lc := lifecycle.New()
	logger := NewLogger(&cfg.Logging, os.Stderr)
	cat := catalog.Default()

	infra := &Infrastructure{
		Lifecycle: lc,
		Logger:    logger,
		Catalog:   cat,
	}

	if cfg.History.UsesDatabase() {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	if cfg.History.ExportEnabled() {
		store, err := storage.New(&cfg.Storage, logger)
		if err != nil {
			return nil, fmt.Errorf("storage init failed: %w", err)
		}
		infra.Storage = store
	}

	res, err := NewResolver(lc.Context(), &cfg.Inference, cat, false, logger)
	if err != nil {
		return nil, err
	}
	infra.Resolver = res

	return infra, nil
}

// NewLogger builds the process logger from cfg, writing to w.
func NewLogger(cfg *config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// NewResolver wires the remote inference adapter and the fallback extractor.
// Remote inference is skipped when offline is set or no credential is configured.
func NewResolver(
	ctx context.Context,
	cfg *inference.Config,
	cat *catalog.Catalog,
	offline bool,
	logger *slog.Logger,
) (*resolver.Resolver, error) {
	var remote resolver.Inferrer

	if !offline && cfg.Enabled() {
		adapter, err := inference.New(ctx, cfg, cat)
		if err != nil {
			return nil, fmt.Errorf("inference init failed: %w", err)
		}
		remote = adapter
		logger.Info("remote inference enabled", "model", cfg.Model, "timeout", cfg.Timeout)
	} else {
		logger.Info("remote inference disabled, using fallback extraction only")
	}

	return resolver.New(remote, extractor.New(cat), cfg.TimeoutDuration(), logger), nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
// Database and storage hooks are registered for startup and shutdown coordination.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
		i.Lifecycle.Track("database", i.Database)
	}
	if i.Storage != nil {
		if err := i.Storage.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("storage start failed: %w", err)
		}
	}
	return nil
}
