package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/orders-api/internal/api/shared"
)

// RouteDoc describes a single route in the API catalog.
type RouteDoc struct {
	Method      string `json:"method"`
	Path        string `json:"path"`
	Description string `json:"description"`
}

// APIDocs is the machine-readable catalog served at /api-docs.
type APIDocs struct {
	Title   string     `json:"title"`
	Version string     `json:"version"`
	Routes  []RouteDoc `json:"routes"`
}

// DocsHandler serves the API route catalog. The catalog is purely
// descriptive and has no bearing on functional behavior.
type DocsHandler struct {
	docs   APIDocs
	logger *slog.Logger
}

// NewDocsHandler creates a new DocsHandler
func NewDocsHandler(logger *slog.Logger) *DocsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for DocsHandler")
	}

	return &DocsHandler{
		docs: APIDocs{
			Title:   "Orders API",
			Version: "1.0",
			Routes: []RouteDoc{
				{Method: http.MethodGet, Path: "/", Description: "Greeting"},
				{Method: http.MethodGet, Path: "/orders", Description: "List all orders"},
				{Method: http.MethodPost, Path: "/orders", Description: "Create an order"},
				{Method: http.MethodPatch, Path: "/orders/{id}", Description: "Partially update an order"},
				{Method: http.MethodPut, Path: "/orders/{id}", Description: "Replace an order"},
				{Method: http.MethodDelete, Path: "/orders/{id}", Description: "Delete an order"},
				{Method: http.MethodGet, Path: "/student", Description: "List all students"},
				{Method: http.MethodGet, Path: "/foods", Description: "List all foods"},
				{Method: http.MethodGet, Path: "/api-docs", Description: "This route catalog"},
				{Method: http.MethodGet, Path: "/health", Description: "Liveness check"},
			},
		},
		logger: logger.With(slog.String("component", "docs_handler")),
	}
}

// ServeDocs handles GET /api-docs requests
func (h *DocsHandler) ServeDocs(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, h.docs)
}
