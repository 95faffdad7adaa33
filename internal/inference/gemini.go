package inference

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Generator sends a single prompt to a language model and returns the text
// of its reply.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini is a Generator backed by the Gemini API.
type Gemini struct {
	client *genai.Client
	model  string
	params *genai.GenerateContentConfig
}

// NewGemini creates a Gemini generator from cfg. No request is made until
// Generate is called.
func NewGemini(ctx context.Context, cfg *Config) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &Gemini{
		client: client,
		model:  cfg.Model,
		params: &genai.GenerateContentConfig{
			Temperature:     genai.Ptr(cfg.Temperature),
			TopK:            genai.Ptr(cfg.TopK),
			TopP:            genai.Ptr(cfg.TopP),
			MaxOutputTokens: cfg.MaxOutputTokens,
		},
	}, nil
}

// Model returns the configured model name.
func (g *Gemini) Model() string {
	return g.model
}

// Generate returns the text of the first part of the first candidate. A reply
// without candidates or parts yields an empty string and no error.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(
		ctx,
		g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		g.params,
	)
	if err != nil {
		return "", err
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 || parts[0] == nil {
		return "", nil
	}

	return parts[0].Text, nil
}
