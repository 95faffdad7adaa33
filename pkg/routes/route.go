package routes

import (
	"net/http"

	"github.com/JaimeStill/blueprint/pkg/openapi"
)

// Route binds an HTTP method and pattern to a handler. OpenAPI optionally
// documents the operation.
type Route struct {
	Method  string
	Pattern string
	Handler http.HandlerFunc
	OpenAPI *openapi.Operation
}

func (r Route) pattern(prefix string) string {
	path := prefix + r.Pattern
	if path == "" {
		path = "/"
	}
	if r.Method == "" {
		return path
	}
	return r.Method + " " + path
}
