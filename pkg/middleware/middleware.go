// Package middleware holds the HTTP middleware wrapped around API module
// routes.
package middleware

import (
	"net/http"
	"slices"
)

// System is an ordered middleware stack. The first middleware passed to Use
// is the outermost wrapper at Apply time.
type System interface {
	Use(mw func(http.Handler) http.Handler)
	Apply(handler http.Handler) http.Handler
}

type stack []func(http.Handler) http.Handler

// New creates an empty middleware System.
func New() System {
	return &stack{}
}

// Use appends mw. Nil middleware is ignored.
func (s *stack) Use(mw func(http.Handler) http.Handler) {
	if mw == nil {
		return
	}
	*s = append(*s, mw)
}

func (s *stack) Apply(handler http.Handler) http.Handler {
	for _, mw := range slices.Backward(*s) {
		handler = mw(handler)
	}
	return handler
}
