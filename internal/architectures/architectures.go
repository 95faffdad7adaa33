// Package architectures exposes resolution and diagram generation over HTTP.
// Clients that send an X-Session-ID header get per-session sequencing: only
// the latest request in a session commits its result, and that result can be
// read back later.
package architectures

import (
	"github.com/google/uuid"

	"github.com/JaimeStill/blueprint/internal/architecture"
	"github.com/JaimeStill/blueprint/internal/resolver"
)

// SessionHeader carries the client session identifier.
const SessionHeader = "X-Session-ID"

// ResolveRequest is the body of a resolve call.
type ResolveRequest struct {
	Text string `json:"text"`
}

// ResolveResponse is a resolution with its rendered diagram. Committed is
// false when a later request in the same session superseded this one.
type ResolveResponse struct {
	Components  []architecture.Component  `json:"components"`
	Connections []architecture.Connection `json:"connections"`
	Diagram     string                    `json:"diagram"`
	Source      resolver.Source           `json:"source"`
	Reason      string                    `json:"reason,omitempty"`
	Committed   bool                      `json:"committed"`
	HistoryID   *uuid.UUID                `json:"history_id,omitempty"`
}

// DiagramRequest asks for markup over caller-supplied components.
type DiagramRequest struct {
	Components  []architecture.Component  `json:"components"`
	Connections []architecture.Connection `json:"connections"`
}

// DiagramResponse carries generated Mermaid markup.
type DiagramResponse struct {
	Diagram string `json:"diagram"`
}
