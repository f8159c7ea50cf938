package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/orders-api/internal/api/shared"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/store"
)

// CatalogHandler handles the read-only pass-through endpoints for the
// student and foods tables. Row shapes are not modeled; whatever the
// database returns is forwarded verbatim as JSON.
type CatalogHandler struct {
	catalogStore store.CatalogStore
	logger       *slog.Logger
}

// NewCatalogHandler creates a new CatalogHandler
func NewCatalogHandler(catalogStore store.CatalogStore, logger *slog.Logger) *CatalogHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CatalogHandler")
	}

	return &CatalogHandler{
		catalogStore: catalogStore,
		logger:       logger.With(slog.String("component", "catalog_handler")),
	}
}

// ListStudents handles GET /student requests
func (h *CatalogHandler) ListStudents(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "student", h.catalogStore.ListStudents)
}

// ListFoods handles GET /foods requests
func (h *CatalogHandler) ListFoods(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, "foods", h.catalogStore.ListFoods)
}

func (h *CatalogHandler) list(
	w http.ResponseWriter,
	r *http.Request,
	table string,
	fetch func(ctx context.Context) ([]map[string]any, error),
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	rows, err := fetch(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	log.Debug("listed catalog rows",
		slog.String("table", table),
		slog.Int("count", len(rows)))
	shared.RespondWithJSON(w, r, http.StatusOK, rows)
}
