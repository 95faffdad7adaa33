package inference_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"google.golang.org/genai"

	"github.com/JaimeStill/blueprint/internal/catalog"
	"github.com/JaimeStill/blueprint/internal/inference"
)

type geminiRequest struct {
	Contents []struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newGeminiServer(t *testing.T, status int, body string, seen *geminiRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || !strings.HasSuffix(r.URL.Path, "/models/test-model:generateContent") {
			t.Errorf("request: %s %s", r.Method, r.URL.Path)
		}
		if seen != nil {
			if err := json.NewDecoder(r.Body).Decode(seen); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGemini(t *testing.T, srv *httptest.Server) *inference.Gemini {
	t.Helper()
	t.Setenv("GOOGLE_GEMINI_BASE_URL", "")

	cfg := &inference.Config{APIKey: "test-key", Model: "test-model", BaseURL: srv.URL}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize: %v", err)
	}

	gen, err := inference.NewGemini(context.Background(), cfg)
	if err != nil {
		t.Fatalf("NewGemini: %v", err)
	}
	return gen
}

func TestGeminiGenerate(t *testing.T) {
	var seen geminiRequest
	reply := `{"candidates":[{"content":{"role":"model","parts":[{"text":"first"},{"text":"second"}]}},` +
		`{"content":{"role":"model","parts":[{"text":"other"}]}}]}`
	srv := newGeminiServer(t, http.StatusOK, reply, &seen)

	got, err := newGemini(t, srv).Generate(context.Background(), "describe this")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "first" {
		t.Errorf("reply = %q, want first", got)
	}

	if len(seen.Contents) != 1 || len(seen.Contents[0].Parts) != 1 || seen.Contents[0].Parts[0].Text != "describe this" {
		t.Errorf("request contents = %+v", seen.Contents)
	}
}

func TestGeminiNoCandidates(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"empty candidates", `{"candidates":[]}`},
		{"no content", `{"candidates":[{"finishReason":"SAFETY"}]}`},
		{"no parts", `{"candidates":[{"content":{"role":"model","parts":[]}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := newGemini(t, newGeminiServer(t, http.StatusOK, tt.body, nil))

			reply, err := gen.Generate(context.Background(), "prompt")
			if err != nil || reply != "" {
				t.Fatalf("Generate = %q, %v; want empty reply", reply, err)
			}

			_, err = inference.NewAdapter(gen, catalog.Default()).Infer(context.Background(), "a react app with an api")
			if !errors.Is(err, inference.ErrService) {
				t.Errorf("Infer error = %v, want ErrService", err)
			}
		})
	}
}

func TestGeminiErrorStatus(t *testing.T) {
	body := `{"error":{"code":503,"message":"overloaded","status":"UNAVAILABLE"}}`
	gen := newGemini(t, newGeminiServer(t, http.StatusServiceUnavailable, body, nil))

	_, err := gen.Generate(context.Background(), "prompt")
	var apiErr genai.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want genai.APIError", err)
	}
	if apiErr.Code != http.StatusServiceUnavailable || apiErr.Message != "overloaded" {
		t.Errorf("APIError = %+v", apiErr)
	}

	_, err = inference.NewAdapter(gen, catalog.Default()).Infer(context.Background(), "a react app with an api")
	if !errors.Is(err, inference.ErrService) {
		t.Errorf("Infer error = %v, want ErrService", err)
	}
}
