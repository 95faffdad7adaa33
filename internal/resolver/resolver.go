// Package resolver turns free text into an architecture, preferring remote
// inference and degrading to the deterministic extractor whenever the remote
// path fails or yields nothing. Resolution never fails.
package resolver

import (
	"context"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/extractor"
	"github.com/JaimeStill/blueprint/internal/inference"
)

// Source identifies which path produced a result.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
	SourceEmpty    Source = "empty"
)

// Inferrer is the remote extraction path.
type Inferrer interface {
	Infer(ctx context.Context, text string) (architecture.Result, error)
}

// Outcome is a Result together with how it was produced. Reason is the
// inference error class when the remote path was abandoned.
type Outcome struct {
	Result architecture.Result `json:"result"`
	Source Source              `json:"source"`
	Reason string              `json:"reason,omitempty"`
}

// Resolver combines an Inferrer with the fallback Extractor.
type Resolver struct {
	remote    Inferrer
	extractor *extractor.Extractor
	timeout   time.Duration
	logger    *slog.Logger
}

// New creates a Resolver. A nil remote skips straight to the extractor.
// A non-positive timeout leaves the remote call bounded only by ctx.
func New(remote Inferrer, ex *extractor.Extractor, timeout time.Duration, logger *slog.Logger) *Resolver {
	return &Resolver{
		remote:    remote,
		extractor: ex,
		timeout:   timeout,
		logger:    logger.With("system", "resolver"),
	}
}

// Resolve returns the architecture for text.
func (r *Resolver) Resolve(ctx context.Context, text string) architecture.Result {
	return r.ResolveDetailed(ctx, text).Result
}

// ResolveDetailed returns the architecture for text along with the path
// taken. Input shorter than extractor.MinLength yields an empty result
// without contacting the remote service.
func (r *Resolver) ResolveDetailed(ctx context.Context, text string) Outcome {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < extractor.MinLength {
		r.logger.Debug("input below minimum length", "length", len(text))
		return Outcome{Result: architecture.Empty(), Source: SourceEmpty}
	}

	reason := "disabled"
	if r.remote != nil {
		result, err := r.infer(ctx, text)
		switch {
		case err != nil:
			reason = inference.Reason(err)
			r.logger.Warn("remote inference failed, using fallback", "reason", reason, "error", err)
		case result.IsEmpty():
			reason = "no components"
			r.logger.Warn("remote inference returned no components, using fallback")
		default:
			r.logger.Info("resolved remotely",
				"components", len(result.Components),
				"connections", len(result.Connections),
			)
			return Outcome{Result: result, Source: SourceRemote}
		}
	}

	components := r.extractor.Extract(text)
	r.logger.Info("resolved by fallback", "components", len(components), "reason", reason)

	return Outcome{
		Result: architecture.Result{
			Components:  components,
			Connections: []architecture.Connection{},
		},
		Source: SourceFallback,
		Reason: reason,
	}
}

func (r *Resolver) infer(ctx context.Context, text string) (architecture.Result, error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	return r.remote.Infer(ctx, text)
}
