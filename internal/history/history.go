// Package history keeps the most recent resolutions: the input text, the
// resulting architecture, and its rendered diagram. Resubmitting the same
// text replaces the earlier entry, and only the newest entries up to the
// retention limit are kept. Diagram markup is also exported to blob storage
// as a downloadable .mmd file when a store is configured.
package history

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

// DefaultRetention is the number of entries kept when no limit is configured.
const DefaultRetention = 5

// Entry is one recorded resolution.
type Entry struct {
	ID             uuid.UUID                 `json:"id"`
	Text           string                    `json:"text"`
	Components     []architecture.Component  `json:"components"`
	Connections    []architecture.Connection `json:"connections"`
	Diagram        string                    `json:"diagram"`
	ComponentCount int                       `json:"component_count"`
	Source         resolver.Source           `json:"source"`
	StorageKey     string                    `json:"storage_key,omitempty"`
	CreatedAt      time.Time                 `json:"created_at"`
}

// RecordCommand carries a completed resolution to be recorded.
type RecordCommand struct {
	Text    string
	Result  architecture.Result
	Diagram string
	Source  resolver.Source
}

func (c RecordCommand) validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return ErrInvalidEntry
	}
	if c.Result.IsEmpty() {
		return ErrInvalidEntry
	}
	return nil
}

func newEntry(id uuid.UUID, cmd RecordCommand) Entry {
	connections := cmd.Result.Connections
	if connections == nil {
		connections = []architecture.Connection{}
	}

	source := cmd.Source
	if source == "" {
		source = resolver.SourceFallback
	}

	return Entry{
		ID:             id,
		Text:           cmd.Text,
		Components:     cmd.Result.Components,
		Connections:    connections,
		Diagram:        cmd.Diagram,
		ComponentCount: len(cmd.Result.Components),
		Source:         source,
	}
}
