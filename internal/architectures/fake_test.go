package architectures_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/internal/architectures"
	"github.com/JaimeStill/blueprint/internal/catalog"
	"github.com/JaimeStill/blueprint/internal/extractor"
	"github.com/JaimeStill/blueprint/internal/history"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// gatedResolver blocks texts that have a gate until the gate closes.
type gatedResolver struct {
	inner   architectures.Resolver
	mu      sync.Mutex
	gates   map[string]chan struct{}
	entered chan string
}

func newGatedResolver() *gatedResolver {
	return &gatedResolver{
		inner:   offline(),
		gates:   make(map[string]chan struct{}),
		entered: make(chan string, 8),
	}
}

func (g *gatedResolver) gate(text string) chan struct{} {
	ch := make(chan struct{})
	g.mu.Lock()
	g.gates[text] = ch
	g.mu.Unlock()
	return ch
}

func (g *gatedResolver) ResolveDetailed(ctx context.Context, text string) resolver.Outcome {
	g.mu.Lock()
	ch := g.gates[text]
	g.mu.Unlock()

	g.entered <- text
	if ch != nil {
		<-ch
	}
	return g.inner.ResolveDetailed(ctx, text)
}

func offline() *resolver.Resolver {
	return resolver.New(nil, extractor.New(catalog.Default()), 0, discard())
}

type fakeRecorder struct {
	mu   sync.Mutex
	cmds []history.RecordCommand
	err  error
}

func (f *fakeRecorder) Record(ctx context.Context, cmd history.RecordCommand) (*history.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	f.cmds = append(f.cmds, cmd)
	return &history.Entry{ID: uuid.New(), Text: cmd.Text}, nil
}

func (f *fakeRecorder) recorded() []history.RecordCommand {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]history.RecordCommand(nil), f.cmds...)
}

var errStore = errors.New("history unavailable")

func newSystem(res architectures.Resolver, rec architectures.Recorder) architectures.System {
	sessions, err := architectures.NewSessions(8)
	if err != nil {
		panic(err)
	}
	return architectures.New(res, catalog.Default(), rec, sessions, 0, discard())
}
