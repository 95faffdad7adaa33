package api

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/JaimeStill/blueprint/internal/history"
	"github.com/JaimeStill/blueprint/pkg/handlers"
	"github.com/JaimeStill/blueprint/pkg/openapi"
	"github.com/JaimeStill/blueprint/pkg/routes"
	"github.com/JaimeStill/blueprint/pkg/storage"
)

const exportPrefix = "diagrams/"

// exportsHandler browses exported diagram blobs directly, independent of
// whether their history entries still exist.
type exportsHandler struct {
	store       storage.System
	logger      *slog.Logger
	maxListSize int32
}

func newExportsHandler(store storage.System, logger *slog.Logger, maxListSize int32) *exportsHandler {
	return &exportsHandler{
		store:       store,
		logger:      logger.With("handler", "exports"),
		maxListSize: maxListSize,
	}
}

func (h *exportsHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/exports",
		Tags:   []string{"Exports"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.list, OpenAPI: exportsSpec.List},
			{Method: "GET", Pattern: "/{name}", Handler: h.download, OpenAPI: exportsSpec.Download},
		},
	}
}

func exportSchemas() map[string]*openapi.Schema {
	return map[string]*openapi.Schema{
		"BlobList": {
			Type: "object",
			Properties: map[string]*openapi.Schema{
				"blobs":       {Type: "array", Items: &openapi.Schema{Type: "object"}},
				"next_marker": {Type: "string"},
			},
		},
	}
}

var exportsSpec = struct {
	List     *openapi.Operation
	Download *openapi.Operation
}{
	List: &openapi.Operation{
		Summary: "List exported diagram files",
		Parameters: []*openapi.Parameter{
			{Name: "marker", In: "query", Description: "Continuation marker", Schema: &openapi.Schema{Type: "string"}},
			{Name: "max_results", In: "query", Description: "Page size", Schema: &openapi.Schema{Type: "integer"}},
		},
		Responses: map[int]*openapi.Response{
			200: openapi.ResponseJSON("Exported blobs", "BlobList"),
			400: openapi.ResponseRef("BadRequest"),
		},
	},
	Download: &openapi.Operation{
		Summary:    "Download an exported diagram file",
		Parameters: []*openapi.Parameter{openapi.PathParam("name", "", "Blob name, with or without the .mmd extension")},
		Responses: map[int]*openapi.Response{
			200: {
				Description: "Mermaid file",
				Content: map[string]*openapi.MediaType{
					history.DiagramContentType: {Schema: &openapi.Schema{Type: "string"}},
				},
			},
			404: openapi.ResponseRef("NotFound"),
		},
	},
}

func (h *exportsHandler) list(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	maxResults, err := storage.ParseMaxResults(q.Get("max_results"), h.maxListSize)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	marker := q.Get("marker")
	if marker != "" && !strings.HasPrefix(marker, exportPrefix) {
		marker = exportPrefix + marker
	}

	result, err := h.store.List(r.Context(), exportPrefix, marker, maxResults)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *exportsHandler) download(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.PathValue("name"))
	if !strings.HasSuffix(name, ".mmd") {
		name += ".mmd"
	}

	result, err := h.store.Download(r.Context(), exportPrefix+name)
	if err != nil {
		handlers.RespondError(w, h.logger, storage.MapHTTPStatus(err), err)
		return
	}
	defer result.Body.Close()

	contentType := result.ContentType
	if contentType == "" {
		contentType = history.DiagramContentType
	}
	w.Header().Set("Content-Type", contentType)
	if result.ContentLength > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(result.ContentLength, 10))
	}
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, result.Body); err != nil {
		h.logger.Warn("export stream interrupted", "name", name, "error", err)
	}
}
