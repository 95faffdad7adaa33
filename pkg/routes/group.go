// Package routes declares HTTP endpoints as nested prefix groups and
// registers them on a ServeMux using method-qualified patterns.
package routes

import (
	"net/http"
	"strings"

	"github.com/JaimeStill/blueprint/pkg/openapi"
)

// Group organizes routes under a common prefix with shared tags.
type Group struct {
	Prefix   string
	Tags     []string
	Routes   []Route
	Children []Group
}

// Register adds all routes from the given groups to the mux.
func Register(mux *http.ServeMux, groups ...Group) {
	for _, group := range groups {
		walk("", nil, group, func(pattern, _ string, r Route, _ []string) {
			mux.HandleFunc(pattern, r.Handler)
		})
	}
}

// Patterns returns every method-qualified pattern the group registers,
// children included, in declaration order.
func (g Group) Patterns() []string {
	var out []string
	walk("", nil, g, func(pattern, _ string, _ Route, _ []string) {
		out = append(out, pattern)
	})
	return out
}

// Document adds every route carrying an OpenAPI operation to spec, with
// paths rooted at prefix. Operations without tags inherit the nearest
// group tags.
func Document(spec *openapi.Spec, prefix string, groups ...Group) {
	for _, group := range groups {
		walk("", nil, group, func(_, path string, r Route, tags []string) {
			if r.OpenAPI == nil {
				return
			}
			op := *r.OpenAPI
			if len(op.Tags) == 0 {
				op.Tags = tags
			}
			spec.AddOperation(r.Method, prefix+openAPIPath(path), &op)
		})
	}
}

// openAPIPath converts ServeMux wildcards such as {key...} to {key}.
func openAPIPath(path string) string {
	return strings.ReplaceAll(path, "...}", "}")
}

func walk(parentPrefix string, parentTags []string, group Group, visit func(string, string, Route, []string)) {
	fullPrefix := parentPrefix + group.Prefix
	tags := parentTags
	if len(group.Tags) > 0 {
		tags = group.Tags
	}
	for _, route := range group.Routes {
		visit(route.pattern(fullPrefix), fullPrefix+route.Pattern, route, tags)
	}
	for _, child := range group.Children {
		walk(fullPrefix, tags, child, visit)
	}
}
