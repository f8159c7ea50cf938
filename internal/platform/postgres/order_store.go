package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/store"
)

// PostgresOrderStore implements the store.OrderStore interface
// using a PostgreSQL database as the storage backend.
type PostgresOrderStore struct {
	db     store.DB
	logger *slog.Logger
}

// NewPostgresOrderStore creates a new PostgreSQL implementation of the
// OrderStore interface. It accepts a database pool or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresOrderStore(db store.DB, logger *slog.Logger) *PostgresOrderStore {
	// Validate inputs
	if db == nil {
		panic("db cannot be nil")
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresOrderStore{
		db:     db,
		logger: logger.With(slog.String("component", "order_store")),
	}
}

// Ensure PostgresOrderStore implements store.OrderStore interface
var _ store.OrderStore = (*PostgresOrderStore)(nil)

// List implements store.OrderStore.List
// It retrieves all orders ordered by id.
func (s *PostgresOrderStore) List(ctx context.Context) ([]domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, name, quantity
		FROM orders
		ORDER BY id
	`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		log.Error("failed to query orders",
			slog.String("error", err.Error()))
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.Name, &order.Quantity); err != nil {
			log.Error("failed to scan order row",
				slog.String("error", err.Error()))
			return nil, err
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no orders found
	if orders == nil {
		orders = []domain.Order{}
	}

	log.Debug("listed orders", slog.Int("count", len(orders)))
	return orders, nil
}

// Create implements store.OrderStore.Create
// It saves a new order and returns it with the database-assigned id.
// Returns validation errors from the domain Order if data is invalid.
func (s *PostgresOrderStore) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate order data
	if err := order.Validate(); err != nil {
		log.Warn("order validation failed during create",
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		INSERT INTO orders (name, quantity)
		VALUES ($1, $2)
		RETURNING id
	`

	if err := s.db.QueryRow(ctx, query, order.Name, order.Quantity).Scan(&order.ID); err != nil {
		log.Error("failed to create order",
			slog.String("error", err.Error()),
			slog.String("name", order.Name))
		return nil, err
	}

	log.Info("order created successfully",
		slog.Int64("order_id", order.ID),
		slog.String("name", order.Name),
		slog.Int("quantity", order.Quantity))
	return order, nil
}

// Replace implements store.OrderStore.Replace
// It fully replaces the name and quantity of an existing order.
// Zero rows affected means the order did not exist; this is not an error.
func (s *PostgresOrderStore) Replace(ctx context.Context, id int64, order *domain.Order) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	// Validate order data
	if err := order.Validate(); err != nil {
		log.Warn("order validation failed during replace",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return 0, fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	query := `
		UPDATE orders
		SET name = $1, quantity = $2
		WHERE id = $3
	`

	tag, err := s.db.Exec(ctx, query, order.Name, order.Quantity, id)
	if err != nil {
		log.Error("failed to replace order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return 0, err
	}

	rowsAffected := tag.RowsAffected()
	if rowsAffected == 0 {
		log.Debug("order not found for replace", slog.Int64("order_id", id))
	} else {
		log.Info("order replaced successfully",
			slog.Int64("order_id", id),
			slog.String("name", order.Name),
			slog.Int("quantity", order.Quantity))
	}
	return rowsAffected, nil
}

// Update implements store.OrderStore.Update
// It applies a partial update built from the non-nil patch fields.
// Returns domain.ErrNoFieldsToUpdate if the patch is empty, so a
// degenerate statement with an empty SET clause is never produced.
func (s *PostgresOrderStore) Update(ctx context.Context, id int64, patch domain.OrderPatch) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query, args, err := buildOrderUpdate(id, patch)
	if err != nil {
		log.Warn("refusing partial update",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return 0, err
	}

	tag, err := s.db.Exec(ctx, query, args...)
	if err != nil {
		log.Error("failed to update order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return 0, err
	}

	rowsAffected := tag.RowsAffected()
	if rowsAffected == 0 {
		log.Debug("order not found for update", slog.Int64("order_id", id))
	} else {
		log.Info("order updated successfully", slog.Int64("order_id", id))
	}
	return rowsAffected, nil
}

// Delete implements store.OrderStore.Delete
// It removes the order with the given id.
// Zero rows affected means the order did not exist; this is not an error.
func (s *PostgresOrderStore) Delete(ctx context.Context, id int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM orders
		WHERE id = $1
	`

	tag, err := s.db.Exec(ctx, query, id)
	if err != nil {
		log.Error("failed to delete order",
			slog.String("error", err.Error()),
			slog.Int64("order_id", id))
		return 0, err
	}

	rowsAffected := tag.RowsAffected()
	if rowsAffected == 0 {
		log.Debug("order not found for delete", slog.Int64("order_id", id))
	} else {
		log.Info("order deleted successfully", slog.Int64("order_id", id))
	}
	return rowsAffected, nil
}

// buildOrderUpdate assembles a parameterized UPDATE statement from the
// non-nil patch fields. Field values are always passed as parameters,
// never concatenated into the statement.
func buildOrderUpdate(id int64, patch domain.OrderPatch) (string, []any, error) {
	if patch.IsEmpty() {
		return "", nil, domain.ErrNoFieldsToUpdate
	}

	sets := make([]string, 0, 2)
	args := make([]any, 0, 3)

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if patch.Quantity != nil {
		args = append(args, *patch.Quantity)
		sets = append(sets, fmt.Sprintf("quantity = $%d", len(args)))
	}

	args = append(args, id)
	query := fmt.Sprintf("UPDATE orders SET %s WHERE id = $%d",
		strings.Join(sets, ", "), len(args))
	return query, args, nil
}
