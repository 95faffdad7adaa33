package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/diagram"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

var errNoInput = errors.New("one of -text or -file is required")

type options struct {
	text        string
	file        string
	offline     bool
	json        bool
	concurrency int
}

// Resolver produces an outcome for free text.
type Resolver interface {
	ResolveDetailed(ctx context.Context, text string) resolver.Outcome
}

type result struct {
	Text        string                    `json:"text"`
	Components  []architecture.Component  `json:"components"`
	Connections []architecture.Connection `json:"connections"`
	Diagram     string                    `json:"diagram"`
	Source      resolver.Source           `json:"source"`
	Reason      string                    `json:"reason,omitempty"`
}

func run(ctx context.Context, res Resolver, opts options, stdin io.Reader, stdout io.Writer) error {
	texts, err := inputs(opts, stdin)
	if err != nil {
		return err
	}

	results, err := resolveAll(ctx, res, texts, opts.concurrency)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if opts.file == "" {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	}

	return writeText(stdout, results)
}

func inputs(opts options, stdin io.Reader) ([]string, error) {
	switch {
	case opts.file == "" && strings.TrimSpace(opts.text) == "":
		return nil, errNoInput
	case opts.file == "":
		return []string{opts.text}, nil
	}

	r := stdin
	if opts.file != "-" {
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		r = f
	}

	var texts []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" && !strings.HasPrefix(line, "#") {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("no descriptions in %s", opts.file)
	}
	return texts, nil
}

func resolveAll(ctx context.Context, res Resolver, texts []string, concurrency int) ([]result, error) {
	if concurrency < 1 {
		concurrency = 1
	}

	results := make([]result, len(texts))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, text := range texts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			out := res.ResolveDetailed(ctx, text)
			results[i] = result{
				Text:        text,
				Components:  out.Result.Components,
				Connections: out.Result.Connections,
				Diagram:     diagram.Generate(out.Result.Components, out.Result.Connections),
				Source:      out.Source,
				Reason:      out.Reason,
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func writeText(w io.Writer, results []result) error {
	bw := bufio.NewWriter(w)

	for i, r := range results {
		if len(results) > 1 {
			if i > 0 {
				fmt.Fprintln(bw)
			}
			fmt.Fprintf(bw, "## %s\n\n", r.Text)
		}

		fmt.Fprintf(bw, "source: %s", r.Source)
		if r.Reason != "" {
			fmt.Fprintf(bw, " (%s)", r.Reason)
		}
		fmt.Fprintln(bw)

		if len(r.Components) == 0 {
			fmt.Fprintln(bw, "no components found")
			continue
		}

		for _, c := range r.Components {
			fmt.Fprintf(bw, "- %s [%s] %s\n", c.Name, c.Category, c.Description)
		}
		fmt.Fprintf(bw, "\n%s", r.Diagram)
	}

	return bw.Flush()
}
