package inference_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/catalog"
	"github.com/JaimeStill/blueprint/internal/inference"
)

type fakeGenerator struct {
	reply  string
	err    error
	prompt string
	calls  int
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.calls++
	f.prompt = prompt
	return f.reply, f.err
}

const chatReply = `{
  "components": [
    {"name": "React SPA", "type": "frontend", "description": "Chat UI"},
    {"name": "Chat API", "type": "backend", "description": "Message routing"},
    {"name": "PostgreSQL", "type": "database"}
  ],
  "connections": [
    {"from": "React SPA", "to": "Chat API", "label": "HTTPS"},
    {"from": "Chat API", "to": "PostgreSQL"}
  ]
}`

func TestInferNotConfigured(t *testing.T) {
	adapter := inference.NewAdapter(nil, catalog.Default())

	if adapter.Enabled() {
		t.Error("Enabled() = true, want false")
	}

	_, err := adapter.Infer(context.Background(), "a react app with an api")
	if !errors.Is(err, inference.ErrConfiguration) {
		t.Errorf("error = %v, want ErrConfiguration", err)
	}
}

func TestInferSendsPrompt(t *testing.T) {
	gen := &fakeGenerator{reply: chatReply}
	adapter := inference.NewAdapter(gen, catalog.Default())

	text := "a chat app with react and postgres"
	if _, err := adapter.Infer(context.Background(), text); err != nil {
		t.Fatalf("Infer error: %v", err)
	}

	if gen.calls != 1 {
		t.Errorf("calls = %d, want 1", gen.calls)
	}
	if !strings.HasSuffix(gen.prompt, "\n\nUser's system description:\n"+text) {
		t.Errorf("prompt does not end with user text: %q", gen.prompt[len(gen.prompt)-80:])
	}
	if !strings.HasPrefix(gen.prompt, "You are a system architecture expert.") {
		t.Error("prompt missing instructions")
	}
}

func TestInferNormalizes(t *testing.T) {
	for _, wrap := range []struct {
		name  string
		reply string
	}{
		{"raw", chatReply},
		{"json fence", "```json\n" + chatReply + "\n```"},
		{"bare fence", "```\n" + chatReply + "\n```"},
	} {
		t.Run(wrap.name, func(t *testing.T) {
			adapter := inference.NewAdapter(&fakeGenerator{reply: wrap.reply}, catalog.Default())

			got, err := adapter.Infer(context.Background(), "a chat app")
			if err != nil {
				t.Fatalf("Infer error: %v", err)
			}

			if len(got.Components) != 3 {
				t.Fatalf("components = %d, want 3", len(got.Components))
			}

			db := got.Components[2]
			if db.Category != architecture.CategoryDatabase || db.Icon != "Database" || db.Style != "database" {
				t.Errorf("database component = %+v", db)
			}
			if db.Description != "PostgreSQL component" {
				t.Errorf("default description = %q", db.Description)
			}
			if got.Components[0].Icon != "Monitor" {
				t.Errorf("frontend icon = %q", got.Components[0].Icon)
			}
			for _, c := range got.Components {
				if c.ID == "" {
					t.Errorf("%s has no id", c.Name)
				}
			}

			if len(got.Connections) != 2 || got.Connections[0].Label != "HTTPS" {
				t.Errorf("connections = %+v", got.Connections)
			}
		})
	}
}

func TestInferCategoryHandling(t *testing.T) {
	reply := `{"components":[
		{"name":"Gateway","type":"gateway"},
		{"name":"Mailer"},
		{"name":"Mailer","type":"backend"},
		{"name":""}
	],"connections":[{"from":"Gateway","to":"Nowhere"}]}`

	adapter := inference.NewAdapter(&fakeGenerator{reply: reply}, catalog.Default())
	got, err := adapter.Infer(context.Background(), "something")
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}

	if len(got.Components) != 2 {
		t.Fatalf("components = %d, want 2", len(got.Components))
	}

	gw := got.Components[0]
	if gw.Category != "gateway" {
		t.Errorf("unknown category not kept as given: %q", gw.Category)
	}
	if gw.Icon != "Cpu" {
		t.Errorf("unknown category icon = %q, want Cpu", gw.Icon)
	}

	mailer := got.Components[1]
	if mailer.Category != architecture.CategoryService || mailer.Style != "service" {
		t.Errorf("absent category = %+v", mailer)
	}

	if len(got.Connections) != 1 || got.Connections[0].To != "Nowhere" {
		t.Errorf("dangling connection not passed through: %+v", got.Connections)
	}
}

func TestInferErrors(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		err   error
		want  error
	}{
		{"service failure", "", errors.New("503"), inference.ErrService},
		{"empty reply", "   ", nil, inference.ErrService},
		{"not json", "Sorry, I cannot help with that.", nil, inference.ErrFormat},
		{"broken json in fence", "```json\n{\"components\": [\n```", nil, inference.ErrFormat},
		{"missing components", `{"connections":[]}`, nil, inference.ErrSchema},
		{"components not array", `{"components":{"name":"x"}}`, nil, inference.ErrSchema},
		{"null components", `{"components":null}`, nil, inference.ErrSchema},
		{"top level array", `[{"name":"x"}]`, nil, inference.ErrSchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := inference.NewAdapter(&fakeGenerator{reply: tt.reply, err: tt.err}, catalog.Default())

			_, err := adapter.Infer(context.Background(), "some system")
			if !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestInferEmptyComponents(t *testing.T) {
	adapter := inference.NewAdapter(&fakeGenerator{reply: `{"components":[]}`}, catalog.Default())

	got, err := adapter.Infer(context.Background(), "some system")
	if err != nil {
		t.Fatalf("Infer error: %v", err)
	}
	if !got.IsEmpty() {
		t.Errorf("components = %d, want 0", len(got.Components))
	}
	if got.Connections == nil {
		t.Error("connections should be non-nil")
	}
}

func TestReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{inference.ErrConfiguration, "configuration"},
		{inference.ErrService, "service"},
		{inference.ErrFormat, "format"},
		{inference.ErrSchema, "schema"},
		{context.DeadlineExceeded, "unknown"},
	}

	for _, tt := range tests {
		if got := inference.Reason(tt.err); got != tt.want {
			t.Errorf("Reason(%v) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
