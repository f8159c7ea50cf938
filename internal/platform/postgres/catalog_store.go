package postgres

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/store"
)

// PostgresCatalogStore implements the store.CatalogStore interface
// using a PostgreSQL database as the storage backend.
//
// The student and foods tables have no schema modeled by this service,
// so rows are returned as dynamic column-name-to-value maps and
// forwarded to clients verbatim.
type PostgresCatalogStore struct {
	db     store.DB
	logger *slog.Logger
}

// NewPostgresCatalogStore creates a new PostgreSQL implementation of the
// CatalogStore interface. It accepts a database pool or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresCatalogStore(db store.DB, logger *slog.Logger) *PostgresCatalogStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresCatalogStore{
		db:     db,
		logger: logger.With(slog.String("component", "catalog_store")),
	}
}

// Ensure PostgresCatalogStore implements store.CatalogStore interface
var _ store.CatalogStore = (*PostgresCatalogStore)(nil)

// ListStudents implements store.CatalogStore.ListStudents
func (s *PostgresCatalogStore) ListStudents(ctx context.Context) ([]map[string]any, error) {
	return s.listTable(ctx, "student")
}

// ListFoods implements store.CatalogStore.ListFoods
func (s *PostgresCatalogStore) ListFoods(ctx context.Context) ([]map[string]any, error) {
	return s.listTable(ctx, "foods")
}

// knownTables guards against the table name ever coming from outside this
// package; only fixed identifiers are interpolated into the statement.
var knownTables = map[string]string{
	"student": "SELECT * FROM student",
	"foods":   "SELECT * FROM foods",
}

// listTable retrieves all rows from one of the known pass-through tables
// as dynamic maps keyed by column name.
func (s *PostgresCatalogStore) listTable(ctx context.Context, table string) ([]map[string]any, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, ok := knownTables[table]
	if !ok {
		panic("unknown catalog table: " + table)
	}

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		log.Error("failed to query catalog table",
			slog.String("error", err.Error()),
			slog.String("table", table))
		return nil, err
	}

	// CollectRows closes rows and maps each row by column name.
	results, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		log.Error("failed to collect catalog rows",
			slog.String("error", err.Error()),
			slog.String("table", table))
		return nil, err
	}

	// Return empty slice instead of nil if the table is empty
	if results == nil {
		results = []map[string]any{}
	}

	log.Debug("listed catalog table",
		slog.String("table", table),
		slog.Int("count", len(results)))
	return results, nil
}
