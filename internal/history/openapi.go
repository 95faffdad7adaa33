package history

import (
	"github.com/JaimeStill/blueprint/pkg/openapi"
)

// Schemas returns the OpenAPI component schemas for history payloads.
func Schemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"HistoryEntry": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"id":              {Type: "string", Format: "uuid"},
				"text":            {Type: "string"},
				"components":      openapi.ArrayOf("Component"),
				"connections":     openapi.ArrayOf("Connection"),
				"diagram":         {Type: "string"},
				"component_count": {Type: "integer"},
				"source":          {Type: "string", Enum: []any{"remote", "fallback", "empty"}},
				"storage_key":     {Type: "string"},
				"created_at":      {Type: "string", Format: "date-time"},
			},
		},
		"HistoryList": openapi.ArrayOf("HistoryEntry"),
		"ClearResult": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"deleted": {Type: "integer"},
			},
		},
	}
}

var idParam = openapi.PathParam("id", "uuid", "History entry ID")

var spec = struct {
	List    *openapi.Operation
	Find    *openapi.Operation
	Diagram *openapi.Operation
	Delete  *openapi.Operation
	Clear   *openapi.Operation
}{
	List: &openapi.Operation{
		Summary: "List recent resolutions, newest first",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("History entries", "HistoryList"),
		},
	},
	Find: &openapi.Operation{
		Summary:    "Get a history entry",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("History entry", "HistoryEntry"),
			400: openapi.ResponseRef("BadRequest"),
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Diagram: &openapi.Operation{
		Summary:    "Download the exported Mermaid file",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Mermaid file",
				Content: map[string]*openapi.MediaType{
					DiagramContentType: {Schema: &openapi.Schema{Type: "string"}},
				},
			},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Delete: &openapi.Operation{
		Summary:    "Delete a history entry",
		Parameters: []*openapi.Parameter{idParam},
		Responses: map[int]*openapi.Response{
			204: {Description: "Deleted"},
			404: openapi.ResponseRef("NotFound"),
		},
	},
	Clear: &openapi.Operation{
		Summary: "Delete all history entries",
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Number of entries removed", "ClearResult"),
		},
	},
}
