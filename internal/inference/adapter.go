// Package inference extracts an architecture from free text with a remote
// language model. The vendor reply envelope, fence stripping, and reply
// validation stay inside this package; callers only see architecture.Result
// or one of the sentinel errors.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/catalog"
	"github.com/JaimeStill/blueprint/pkg/formatting"
)

// Adapter turns free text into a normalized Result through a Generator.
type Adapter struct {
	generator Generator
	catalog   *catalog.Catalog
}

type rawComponent struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
}

// NewAdapter creates an Adapter. A nil generator yields an adapter whose
// every call fails with ErrConfiguration.
func NewAdapter(gen Generator, cat *catalog.Catalog) *Adapter {
	return &Adapter{generator: gen, catalog: cat}
}

// New creates an Adapter backed by Gemini when cfg carries a credential,
// and an unconfigured adapter otherwise.
func New(ctx context.Context, cfg *Config, cat *catalog.Catalog) (*Adapter, error) {
	if !cfg.Enabled() {
		return NewAdapter(nil, cat), nil
	}

	gen, err := NewGemini(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return NewAdapter(gen, cat), nil
}

// Enabled reports whether the adapter can reach a model.
func (a *Adapter) Enabled() bool {
	return a.generator != nil
}

// Infer sends text to the model and normalizes the reply.
func (a *Adapter) Infer(ctx context.Context, text string) (architecture.Result, error) {
	if a.generator == nil {
		return architecture.Result{}, ErrConfiguration
	}

	reply, err := a.generator.Generate(ctx, Prompt(text))
	if err != nil {
		return architecture.Result{}, fmt.Errorf("%w: %v", ErrService, err)
	}
	if strings.TrimSpace(reply) == "" {
		return architecture.Result{}, fmt.Errorf("%w: empty reply", ErrService)
	}

	return a.Decode(reply)
}

// Decode parses a model reply, optionally wrapped in one code fence, into
// a normalized Result.
func (a *Adapter) Decode(reply string) (architecture.Result, error) {
	doc, err := formatting.Parse[json.RawMessage](reply)
	if err != nil {
		return architecture.Result{}, fmt.Errorf("%w: %v", ErrFormat, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(doc, &fields); err != nil {
		return architecture.Result{}, fmt.Errorf("%w: reply is not an object", ErrSchema)
	}

	rawList, ok := fields["components"]
	if !ok || !bytes.HasPrefix(bytes.TrimSpace(rawList), []byte("[")) {
		return architecture.Result{}, ErrSchema
	}

	var raw []rawComponent
	if err := json.Unmarshal(rawList, &raw); err != nil {
		return architecture.Result{}, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	// Malformed connections degrade to none; they are only rendering hints.
	connections := []architecture.Connection{}
	if rawConns, ok := fields["connections"]; ok {
		var parsed []architecture.Connection
		if err := json.Unmarshal(rawConns, &parsed); err == nil && parsed != nil {
			connections = parsed
		}
	}

	return architecture.Result{
		Components:  a.normalize(raw),
		Connections: connections,
	}, nil
}

func (a *Adapter) normalize(raw []rawComponent) []architecture.Component {
	components := make([]architecture.Component, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, rc := range raw {
		if rc.Name == "" {
			continue
		}
		if _, dup := seen[rc.Name]; dup {
			continue
		}
		seen[rc.Name] = struct{}{}

		cat := architecture.Category(rc.Type)
		if cat == "" {
			cat = architecture.CategoryService
		}

		desc := rc.Description
		if desc == "" {
			desc = rc.Name + " component"
		}

		components = append(components, architecture.Component{
			ID:          architecture.NewID(),
			Name:        rc.Name,
			Category:    cat,
			Icon:        a.catalog.Icon(cat.Normalize()),
			Style:       string(cat),
			Description: desc,
		})
	}

	return components
}
