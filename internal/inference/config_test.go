package inference_test

import (
	"testing"

	"github.com/JaimeStill/blueprint/internal/inference"
)

var testEnv = &inference.Env{
	APIKey:          "TEST_INFERENCE_API_KEY",
	Model:           "TEST_INFERENCE_MODEL",
	Timeout:         "TEST_INFERENCE_TIMEOUT",
	Temperature:     "TEST_INFERENCE_TEMPERATURE",
	TopK:            "TEST_INFERENCE_TOP_K",
	TopP:            "TEST_INFERENCE_TOP_P",
	MaxOutputTokens: "TEST_INFERENCE_MAX_OUTPUT_TOKENS",
	BaseURL:         "TEST_INFERENCE_BASE_URL",
}

func TestConfigDefaults(t *testing.T) {
	t.Setenv(inference.FallbackAPIKeyEnv, "")

	cfg := &inference.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if cfg.Model != "gemini-2.0-flash" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.TimeoutDuration().Seconds() != 30 {
		t.Errorf("Timeout = %s", cfg.Timeout)
	}
	if cfg.Temperature != 0.3 || cfg.TopK != 40 || cfg.TopP != 0.95 || cfg.MaxOutputTokens != 2048 {
		t.Errorf("generation params = %+v", cfg)
	}
	if cfg.Enabled() {
		t.Error("Enabled() = true without a key")
	}
}

func TestConfigEnv(t *testing.T) {
	t.Setenv("TEST_INFERENCE_API_KEY", "secret")
	t.Setenv("TEST_INFERENCE_MODEL", "gemini-2.5-flash")
	t.Setenv("TEST_INFERENCE_TIMEOUT", "5s")
	t.Setenv("TEST_INFERENCE_TEMPERATURE", "0.7")
	t.Setenv("TEST_INFERENCE_TOP_K", "20")
	t.Setenv("TEST_INFERENCE_TOP_P", "0.5")
	t.Setenv("TEST_INFERENCE_MAX_OUTPUT_TOKENS", "512")

	cfg := &inference.Config{}
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}

	if cfg.APIKey != "secret" || cfg.Model != "gemini-2.5-flash" || cfg.Timeout != "5s" {
		t.Errorf("config = %+v", cfg)
	}
	if cfg.Temperature != 0.7 || cfg.TopK != 20 || cfg.TopP != 0.5 || cfg.MaxOutputTokens != 512 {
		t.Errorf("generation params = %+v", cfg)
	}
	if !cfg.Enabled() {
		t.Error("Enabled() = false with a key")
	}
}

func TestConfigFallbackKey(t *testing.T) {
	t.Setenv(inference.FallbackAPIKeyEnv, "from-gemini-env")

	cfg := &inference.Config{}
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	if cfg.APIKey != "from-gemini-env" {
		t.Errorf("APIKey = %q", cfg.APIKey)
	}

	explicit := &inference.Config{APIKey: "configured"}
	if err := explicit.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	if explicit.APIKey != "configured" {
		t.Errorf("APIKey = %q, want configured", explicit.APIKey)
	}
}

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  inference.Config
	}{
		{"bad timeout", inference.Config{Timeout: "soon"}},
		{"negative timeout", inference.Config{Timeout: "-1s"}},
		{"temperature", inference.Config{Temperature: 3}},
		{"top_p", inference.Config{TopP: 1.5}},
		{"max tokens", inference.Config{MaxOutputTokens: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			if err := cfg.Finalize(nil); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestConfigMerge(t *testing.T) {
	base := &inference.Config{Model: "gemini-2.0-flash", Timeout: "30s", TopK: 40}
	base.Merge(&inference.Config{Model: "gemini-2.5-pro", TopK: 10})

	if base.Model != "gemini-2.5-pro" || base.TopK != 10 || base.Timeout != "30s" {
		t.Errorf("merged = %+v", base)
	}
}

func TestConfigBaseURL(t *testing.T) {
	t.Setenv("TEST_INFERENCE_BASE_URL", "http://127.0.0.1:9999")

	cfg := &inference.Config{}
	if err := cfg.Finalize(testEnv); err != nil {
		t.Fatalf("Finalize error: %v", err)
	}
	if cfg.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}

	bad := &inference.Config{BaseURL: "not a url"}
	if err := bad.Finalize(nil); err == nil {
		t.Error("expected error for invalid base_url")
	}
}
