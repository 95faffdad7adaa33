// Package architecture defines the data model shared by the extraction and
// diagram pipeline: categorized components, named connections, and the
// result pair produced by a single resolution.
package architecture

import (
	"slices"

	"github.com/google/uuid"
)

// Category is the closed classification of a component.
type Category string

// Known component categories.
const (
	CategoryFrontend Category = "frontend"
	CategoryBackend  Category = "backend"
	CategoryDatabase Category = "database"
	CategoryAuth     Category = "auth"
	CategoryCache    Category = "cache"
	CategoryStorage  Category = "storage"
	CategoryQueue    Category = "queue"
	CategoryService  Category = "service"
)

var categories = []Category{
	CategoryFrontend,
	CategoryBackend,
	CategoryDatabase,
	CategoryAuth,
	CategoryCache,
	CategoryStorage,
	CategoryQueue,
	CategoryService,
}

// Categories returns the known categories in catalog order.
func Categories() []Category {
	return slices.Clone(categories)
}

// Known reports whether c is one of the closed set of categories.
func (c Category) Known() bool {
	return slices.Contains(categories, c)
}

// Normalize maps unrecognized or empty categories to CategoryService.
func (c Category) Normalize() Category {
	if c.Known() {
		return c
	}
	return CategoryService
}

// Component is one architectural element of a described system.
type Component struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Category    Category `json:"type"`
	Icon        string   `json:"icon"`
	Style       string   `json:"style"`
	Description string   `json:"description"`
}

// Connection is a directed relationship between two components, referenced by name.
type Connection struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Label string `json:"label,omitempty"`
}

// Result pairs the ordered components and connections of one resolution.
type Result struct {
	Components  []Component  `json:"components"`
	Connections []Connection `json:"connections"`
}

// Empty returns a Result with non-nil, zero-length collections.
func Empty() Result {
	return Result{
		Components:  []Component{},
		Connections: []Connection{},
	}
}

// IsEmpty reports whether the result holds no components.
func (r Result) IsEmpty() bool {
	return len(r.Components) == 0
}

// NewID returns a fresh opaque component identifier.
func NewID() string {
	return uuid.NewString()
}
