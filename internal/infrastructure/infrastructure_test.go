package infrastructure_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/JaimeStill/blueprint/internal/config"
	"github.com/JaimeStill/blueprint/internal/infrastructure"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

func loadConfig(t *testing.T) *config.Config {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("BLUEPRINT_INFERENCE_API_KEY", "")
	t.Setenv(config.EnvHistoryBackend, config.HistoryMemory)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return cfg
}

func TestNewWithoutExternalSystems(t *testing.T) {
	cfg := loadConfig(t)

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if infra.Database != nil {
		t.Error("database created for memory history")
	}
	if infra.Storage != nil {
		t.Error("storage created with export disabled")
	}
	if err := infra.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}

	infra.Lifecycle.WaitForStartup()
	if !infra.Lifecycle.Ready() {
		t.Error("not ready")
	}

	out := infra.Resolver.ResolveDetailed(context.Background(), "store data in postgresql please")
	if out.Source != resolver.SourceFallback || out.Reason != "disabled" {
		t.Errorf("outcome: %s/%s", out.Source, out.Reason)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	logger := infrastructure.NewLogger(&config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info logged at warn level")
	}
	if !strings.Contains(out, `"msg":"shown"`) {
		t.Errorf("json output: %q", out)
	}
}

func TestNewResolverOffline(t *testing.T) {
	cfg := loadConfig(t)

	infra, err := infrastructure.New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	cfg.Inference.APIKey = "configured"

	res, err := infrastructure.NewResolver(context.Background(), &cfg.Inference, infra.Catalog, true, infra.Logger)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}

	out := res.ResolveDetailed(context.Background(), "store data in postgresql please")
	if out.Source != resolver.SourceFallback || out.Reason != "disabled" {
		t.Errorf("outcome: %s/%s", out.Source, out.Reason)
	}
}
