package api

// Common request/response structures

// CreateOrderRequest defines the payload for the order creation endpoint.
// Name is normalized (trimmed, HTML-escaped) before validation.
type CreateOrderRequest struct {
	Name     string `json:"name"     validate:"required,min=1"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// ReplaceOrderRequest defines the payload for the full-replacement endpoint.
// Both fields are required; a replace never leaves a field unchanged.
type ReplaceOrderRequest struct {
	Name     string `json:"name"     validate:"required,min=1"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateOrderRequest defines the payload for the partial-update endpoint.
// Nil fields were absent from the request and are left untouched.
// Supplied fields are validated with the same rules as on create.
type UpdateOrderRequest struct {
	Name     *string `json:"name"     validate:"omitnil,min=1"`
	Quantity *int    `json:"quantity" validate:"omitnil,gte=1"`
}

// OrderResponse defines the response body for a single order.
type OrderResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// MutationResponse defines the response body for update/replace/delete
// operations: a human-readable message plus the number of rows affected.
type MutationResponse struct {
	Msg          string `json:"msg"`
	AffectedRows int64  `json:"affectedRows"`
}
