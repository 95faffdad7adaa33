package architectures

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/catalog"
	"github.com/JaimeStill/blueprint/internal/diagram"
	"github.com/JaimeStill/blueprint/internal/history"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

// DefaultMaxTextLength is the description length, in characters, above which
// Resolve rejects the request.
const DefaultMaxTextLength = 1000

// Resolver produces an outcome for free text.
type Resolver interface {
	ResolveDetailed(ctx context.Context, text string) resolver.Outcome
}

// Recorder persists committed resolutions.
type Recorder interface {
	Record(ctx context.Context, cmd history.RecordCommand) (*history.Entry, error)
}

// System defines the public contract for architecture operations.
type System interface {
	Handler() *Handler

	// Resolve resolves text. A non-empty sessionID sequences the call
	// against other calls in the same session. Text longer than the
	// configured maximum fails with ErrInvalidText before any inference.
	Resolve(ctx context.Context, sessionID, text string) (*ResolveResponse, error)
	// Session returns the latest committed result for a session.
	Session(ctx context.Context, sessionID string) (*ResolveResponse, error)
	Diagram(components []architecture.Component, connections []architecture.Connection) string
	Catalog() catalog.Tables
}

type system struct {
	resolver      Resolver
	catalog       *catalog.Catalog
	recorder      Recorder
	sessions      *Sessions
	maxTextLength int
	logger        *slog.Logger
}

// New creates the architectures system. recorder may be nil, in which case
// nothing is recorded. A non-positive maxTextLength uses DefaultMaxTextLength.
func New(
	res Resolver,
	cat *catalog.Catalog,
	recorder Recorder,
	sessions *Sessions,
	maxTextLength int,
	logger *slog.Logger,
) System {
	if maxTextLength <= 0 {
		maxTextLength = DefaultMaxTextLength
	}
	return &system{
		resolver:      res,
		catalog:       cat,
		recorder:      recorder,
		sessions:      sessions,
		maxTextLength: maxTextLength,
		logger:        logger.With("system", "architectures"),
	}
}

func (s *system) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *system) Resolve(ctx context.Context, sessionID, text string) (*ResolveResponse, error) {
	if n := utf8.RuneCountInString(text); n > s.maxTextLength {
		return nil, fmt.Errorf("%w: %d characters exceeds the limit of %d", ErrInvalidText, n, s.maxTextLength)
	}

	var (
		tracker *resolver.Tracker
		ticket  uint64
	)
	if sessionID != "" {
		if err := ValidateSessionID(sessionID); err != nil {
			return nil, err
		}
		tracker = s.sessions.Tracker(sessionID)
		ticket = tracker.Begin()
	}

	outcome := s.resolver.ResolveDetailed(ctx, text)
	resp := s.respond(outcome)

	resp.Committed = tracker == nil || tracker.Commit(ticket, outcome)
	if !resp.Committed {
		s.logger.Info("resolution superseded", "session", sessionID, "ticket", ticket)
		return resp, nil
	}

	if s.recorder != nil && !outcome.Result.IsEmpty() {
		entry, err := s.recorder.Record(ctx, history.RecordCommand{
			Text:    text,
			Result:  outcome.Result,
			Diagram: resp.Diagram,
			Source:  outcome.Source,
		})
		if err != nil {
			s.logger.Warn("history record failed", "error", err)
		} else {
			resp.HistoryID = &entry.ID
		}
	}

	return resp, nil
}

func (s *system) Session(ctx context.Context, sessionID string) (*ResolveResponse, error) {
	if err := ValidateSessionID(sessionID); err != nil {
		return nil, err
	}

	tracker, ok := s.sessions.Lookup(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	outcome, ok := tracker.Current()
	if !ok {
		return nil, ErrSessionNotFound
	}

	resp := s.respond(outcome)
	resp.Committed = true
	return resp, nil
}

func (s *system) Diagram(components []architecture.Component, connections []architecture.Connection) string {
	return diagram.Generate(components, connections)
}

func (s *system) Catalog() catalog.Tables {
	return s.catalog.Tables()
}

func (s *system) respond(outcome resolver.Outcome) *ResolveResponse {
	components := outcome.Result.Components
	if components == nil {
		components = []architecture.Component{}
	}
	connections := outcome.Result.Connections
	if connections == nil {
		connections = []architecture.Connection{}
	}

	return &ResolveResponse{
		Components:  components,
		Connections: connections,
		Diagram:     diagram.Generate(components, connections),
		Source:      outcome.Source,
		Reason:      outcome.Reason,
	}
}
