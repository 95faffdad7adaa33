package architectures

import (
	"github.com/JaimeStill/blueprint/pkg/openapi"
)

var categories = []any{"frontend", "backend", "database", "auth", "cache", "storage", "queue", "service"}

// Schemas returns the OpenAPI component schemas for architecture payloads.
func Schemas() map[string]*openapi.Schema {
	maxText := DefaultMaxTextLength

	return map[string]*openapi.Schema{
		"Component": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":          {Type: "string", Description: "Unique component identifier"},
				"name":        {Type: "string", Example: "PostgreSQL DB"},
				"type":        {Type: "string", Enum: categories, Description: "Component category"},
				"icon":        {Type: "string", Example: "Database"},
				"style":       {Type: "string", Example: "database"},
				"description": {Type: "string"},
			},
			Required: []string{"name", "type"},
		},
		"Connection": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"from":  {Type: "string", Description: "Source component name"},
				"to":    {Type: "string", Description: "Target component name"},
				"label": {Type: "string"},
			},
			Required: []string{"from", "to"},
		},
		"ResolveRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"text": {
					Type:        "string",
					Description: "Project description; the server limit is configurable",
					Example:     "A real-time chat application with user authentication",
					MaxLength:   &maxText,
				},
			},
			Required: []string{"text"},
		},
		"ResolveResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"components":  openapi.ArrayOf("Component"),
				"connections": openapi.ArrayOf("Connection"),
				"diagram":     {Type: "string", Description: "Mermaid flowchart markup"},
				"source":      {Type: "string", Enum: []any{"remote", "fallback", "empty"}},
				"reason":      {Type: "string", Description: "Why remote inference was not used"},
				"committed":   {Type: "boolean", Description: "False when a later request in the same session superseded this one"},
				"history_id":  {Type: "string", Format: "uuid"},
			},
		},
		"DiagramRequest": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"components":  openapi.ArrayOf("Component"),
				"connections": openapi.ArrayOf("Connection"),
			},
		},
		"DiagramResponse": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"diagram": {Type: "string"},
			},
		},
		"Catalog": {
			Type:        "object",
			Description: "Pattern tables used by keyword extraction",
		},
	}
}

var spec = struct {
	Resolve *openapi.Operation
	Diagram *openapi.Operation
	Session *openapi.Operation
	Catalog *openapi.Operation
}{
	Resolve: &openapi.Operation{
		Summary:     "Resolve a description",
		Description: "Extracts components and connections from free text and renders a diagram. Never fails for well-formed input within the text limit.",
		Parameters:  []*openapi.Parameter{openapi.HeaderParam(SessionHeader, "Client session for latest-request sequencing")},
		RequestBody: openapi.RequestBodyJSON("ResolveRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resolution", "ResolveResponse"),
			400: openapi.ResponseRef("BadRequest"),
			413: openapi.ResponseRef("PayloadTooLarge"),
		},
	},
	Diagram: &openapi.Operation{
		Summary:     "Render a diagram",
		RequestBody: openapi.RequestBodyJSON("DiagramRequest", true),
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Mermaid markup", "DiagramResponse"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Session: &openapi.Operation{
		Summary:    "Latest committed result for a session",
		Parameters: []*openapi.Parameter{openapi.PathParam("id", "", "Session identifier")},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Resolution", "ResolveResponse"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Catalog: &openapi.Operation{
		Summary: "Pattern catalog",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Catalog tables", "Catalog"),
		},
	},
}
