package store

import (
	"context"

	"github.com/phrazzld/orders-api/internal/domain"
)

// OrderStore defines the interface for order data persistence.
// Version: 1.0
type OrderStore interface {
	// List retrieves all orders, ordered by id.
	// Returns an empty slice if the table is empty.
	List(ctx context.Context) ([]domain.Order, error)

	// Create saves a new order and returns it with the
	// database-assigned id populated.
	// It handles domain validation internally.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// Replace fully replaces the name and quantity of the order with the
	// given id. Returns the number of rows affected: zero means the order
	// did not exist, which is not an error (update, not upsert).
	Replace(ctx context.Context, id int64, order *domain.Order) (int64, error)

	// Update applies a partial update to the order with the given id.
	// Only non-nil patch fields are written. Returns the number of rows
	// affected; zero means the order did not exist.
	// Returns domain.ErrNoFieldsToUpdate if the patch is empty.
	Update(ctx context.Context, id int64, patch domain.OrderPatch) (int64, error)

	// Delete removes the order with the given id. Returns the number of
	// rows affected; zero means the order did not exist.
	Delete(ctx context.Context, id int64) (int64, error)
}

// CatalogStore defines read-only access to tables whose row shape is not
// modeled by the application. Rows are forwarded verbatim to clients.
type CatalogStore interface {
	// ListStudents retrieves all rows from the student table.
	ListStudents(ctx context.Context) ([]map[string]any, error)

	// ListFoods retrieves all rows from the foods table.
	ListFoods(ctx context.Context) ([]map[string]any, error)
}
