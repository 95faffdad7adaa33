// Package module mounts self-contained HTTP sub-applications under a
// single-level path prefix, each with its own middleware stack.
package module

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/JaimeStill/blueprint/pkg/middleware"
	"github.com/JaimeStill/blueprint/pkg/routes"
)

// ErrInvalidPrefix reports a module prefix that is not a single-level path.
var ErrInvalidPrefix = errors.New("invalid module prefix")

// Module is an HTTP handler that strips its prefix and delegates to an inner router
// with its own middleware stack.
type Module struct {
	prefix     string
	router     http.Handler
	middleware middleware.System
	patterns   []string
}

// New creates a Module with the given single-level prefix (e.g. "/api").
// Panics if the prefix is empty, missing a leading slash, or multi-level.
func New(prefix string, router http.Handler) *Module {
	if err := validatePrefix(prefix); err != nil {
		panic(err)
	}
	return &Module{
		prefix:     prefix,
		router:     router,
		middleware: middleware.New(),
	}
}

// FromGroups creates a Module whose inner router serves the given route groups.
func FromGroups(prefix string, groups ...routes.Group) *Module {
	mux := http.NewServeMux()
	routes.Register(mux, groups...)

	m := New(prefix, mux)
	for _, g := range groups {
		for _, p := range g.Patterns() {
			method, path, _ := strings.Cut(p, " ")
			m.patterns = append(m.patterns, method+" "+prefix+path)
		}
	}
	return m
}

// Handler returns the inner router wrapped with the module's middleware stack.
func (m *Module) Handler() http.Handler {
	return m.middleware.Apply(m.router)
}

// Prefix returns the module's path prefix.
func (m *Module) Prefix() string {
	return m.prefix
}

// Patterns returns the fully prefixed route patterns of a module built with
// FromGroups.
func (m *Module) Patterns() []string {
	return m.patterns
}

// Serve strips the module prefix from the request path and dispatches to the inner router.
func (m *Module) Serve(w http.ResponseWriter, req *http.Request) {
	path := extractPath(req.URL.Path, m.prefix)
	request := cloneRequest(req, path)
	m.Handler().ServeHTTP(w, request)
}

// Use adds middleware to the module's stack.
func (m *Module) Use(mw func(http.Handler) http.Handler) {
	m.middleware.Use(mw)
}

func cloneRequest(req *http.Request, path string) *http.Request {
	request := req.Clone(req.Context())
	request.URL = new(url.URL)
	*request.URL = *req.URL
	request.URL.Path = path
	request.URL.RawPath = ""
	return request
}

func extractPath(fullPath, prefix string) string {
	path := fullPath[len(prefix):]
	if path == "" {
		return "/"
	}
	return path
}

func validatePrefix(prefix string) error {
	switch {
	case prefix == "":
		return fmt.Errorf("%w: empty", ErrInvalidPrefix)
	case !strings.HasPrefix(prefix, "/"):
		return fmt.Errorf("%w: must start with /: %s", ErrInvalidPrefix, prefix)
	case strings.Count(prefix, "/") != 1 || len(prefix) == 1:
		return fmt.Errorf("%w: must be a single-level sub-path: %s", ErrInvalidPrefix, prefix)
	}
	return nil
}
