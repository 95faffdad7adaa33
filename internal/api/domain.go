package api

import (
	"github.com/JaimeStill/blueprint/internal/architectures"
	"github.com/JaimeStill/blueprint/internal/config"
	"github.com/JaimeStill/blueprint/internal/history"
)

// Domain holds all domain systems that comprise the API. History is nil
// when recording is disabled.
type Domain struct {
	Architectures architectures.System
	History       history.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) (*Domain, error) {
	var hist history.System
	switch runtime.History.Backend {
	case config.HistoryPostgres:
		hist = history.New(
			runtime.Database.Connection(),
			runtime.Storage,
			runtime.Logger,
			runtime.History.Retention,
		)
	case config.HistoryMemory:
		hist = history.NewMemory(runtime.Storage, runtime.Logger, runtime.History.Retention)
	}

	sessions, err := architectures.NewSessions(runtime.SessionCapacity)
	if err != nil {
		return nil, err
	}

	var recorder architectures.Recorder
	if hist != nil {
		recorder = hist
	}

	return &Domain{
		Architectures: architectures.New(
			runtime.Resolver,
			runtime.Catalog,
			recorder,
			sessions,
			runtime.MaxTextLength,
			runtime.Logger,
		),
		History: hist,
	}, nil
}
