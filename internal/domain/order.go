package domain

import (
	"html"
	"strings"
)

// Order represents a single row in the orders table.
// The ID is assigned by the database on insert.
type Order struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// OrderPatch describes a partial update to an order. Nil fields are
// left untouched by the update.
type OrderPatch struct {
	Name     *string
	Quantity *int
}

// IsEmpty reports whether the patch carries no fields at all.
func (p OrderPatch) IsEmpty() bool {
	return p.Name == nil && p.Quantity == nil
}

// NewOrder creates a new Order with a normalized name and validates it.
// The ID is left zero until the database assigns one.
// Returns an error if validation fails.
func NewOrder(name string, quantity int) (*Order, error) {
	order := &Order{
		Name:     NormalizeOrderName(name),
		Quantity: quantity,
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	return order, nil
}

// NormalizeOrderName trims surrounding whitespace and escapes HTML
// markup so stored names are inert when rendered by clients.
func NormalizeOrderName(name string) string {
	return html.EscapeString(strings.TrimSpace(name))
}

// Validate checks if the Order has valid data.
// Returns an error if any field fails validation.
func (o *Order) Validate() error {
	if strings.TrimSpace(o.Name) == "" {
		return ErrEmptyOrderName
	}

	if o.Quantity < 1 {
		return ErrInvalidQuantity
	}

	return nil
}
