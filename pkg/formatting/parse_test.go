package formatting_test

import (
	"errors"
	"testing"

	"github.com/JaimeStill/blueprint/pkg/formatting"
)

type reply struct {
	Components []struct {
		Name string `json:"name"`
	} `json:"components"`
}

func TestStripFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"padded", "  \n{\"a\":1}\n  ", `{"a":1}`},
		{"json tagged", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"untagged", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"outer whitespace", "\n\n```json\n{\"a\":1}\n```\n\n", `{"a":1}`},
		{"opening only", "```json\n{\"a\":1}", `{"a":1}`},
		{"closing only", "{\"a\":1}\n```", `{"a":1}`},
		{"single pass", "``````json\n{}\n``````", "```json\n{}\n```"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatting.StripFence(tt.input); got != tt.want {
				t.Errorf("StripFence(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParse(t *testing.T) {
	t.Run("direct JSON", func(t *testing.T) {
		got, err := formatting.Parse[reply](`{"components":[{"name":"API"}]}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if len(got.Components) != 1 || got.Components[0].Name != "API" {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("fenced JSON", func(t *testing.T) {
		input := "```json\n{\"components\":[{\"name\":\"Redis\"},{\"name\":\"Kafka\"}]}\n```"
		got, err := formatting.Parse[reply](input)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if len(got.Components) != 2 || got.Components[1].Name != "Kafka" {
			t.Errorf("Parse = %+v", got)
		}
	})

	t.Run("prose around fence fails", func(t *testing.T) {
		input := "Here you go:\n```json\n{\"components\":[]}\n```"
		_, err := formatting.Parse[reply](input)
		if !errors.Is(err, formatting.ErrParseFailed) {
			t.Errorf("error = %v, want ErrParseFailed", err)
		}
	})

	t.Run("invalid content", func(t *testing.T) {
		for _, input := range []string{"", "not json", "```json\n{broken\n```"} {
			if _, err := formatting.Parse[reply](input); !errors.Is(err, formatting.ErrParseFailed) {
				t.Errorf("Parse(%q) error = %v, want ErrParseFailed", input, err)
			}
		}
	})

	t.Run("map target", func(t *testing.T) {
		got, err := formatting.Parse[map[string]any](`{"key":"value"}`)
		if err != nil {
			t.Fatalf("Parse error: %v", err)
		}
		if got["key"] != "value" {
			t.Errorf("got[key] = %v, want value", got["key"])
		}
	})
}
