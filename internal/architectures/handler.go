package architectures

import (
	"log/slog"
	"net/http"

	"github.com/JaimeStill/blueprint/pkg/handlers"
	"github.com/JaimeStill/blueprint/pkg/routes"
)

// Handler provides HTTP endpoints for architecture operations.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// NewHandler creates a Handler with the given system and logger.
func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "architectures"),
	}
}

// Routes returns the architectures and catalog route groups.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Children: []routes.Group{
			{
				Prefix: "/architectures",
				Tags:   []string{"Architectures"},
				Routes: []routes.Route{
					{Method: "POST", Pattern: "/resolve", Handler: h.Resolve, OpenAPI: spec.Resolve},
					{Method: "POST", Pattern: "/diagram", Handler: h.Diagram, OpenAPI: spec.Diagram},
					{Method: "GET", Pattern: "/sessions/{id}", Handler: h.Session, OpenAPI: spec.Session},
				},
			},
			{
				Prefix: "/catalog",
				Tags:   []string{"Catalog"},
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: h.Catalog, OpenAPI: spec.Catalog},
				},
			},
		},
	}
}

// Resolve turns the request text into components, connections, and a diagram.
func (h *Handler) Resolve(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[ResolveRequest](r)
	if err != nil {
		handlers.RespondError(w, h.logger, handlers.DecodeStatus(err), err)
		return
	}

	resp, err := h.sys.Resolve(r.Context(), r.Header.Get(SessionHeader), req.Text)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Diagram renders markup for caller-supplied components and connections.
func (h *Handler) Diagram(w http.ResponseWriter, r *http.Request) {
	req, err := handlers.DecodeJSON[DiagramRequest](r)
	if err != nil {
		handlers.RespondError(w, h.logger, handlers.DecodeStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, DiagramResponse{
		Diagram: h.sys.Diagram(req.Components, req.Connections),
	})
}

// Session returns the latest committed result for the session in the path.
func (h *Handler) Session(w http.ResponseWriter, r *http.Request) {
	resp, err := h.sys.Session(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, resp)
}

// Catalog returns the pattern tables used by the fallback extractor.
func (h *Handler) Catalog(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, h.sys.Catalog())
}
