// Package api provides HTTP handlers for the API.
package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/orders-api/internal/api/shared"
	"github.com/phrazzld/orders-api/internal/domain"
	"github.com/phrazzld/orders-api/internal/platform/logger"
	"github.com/phrazzld/orders-api/internal/store"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderStore store.OrderStore
	logger     *slog.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderStore store.OrderStore, logger *slog.Logger) *OrderHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for OrderHandler")
	}

	return &OrderHandler{
		orderStore: orderStore,
		logger:     logger.With(slog.String("component", "order_handler")),
	}
}

// ListOrders handles GET /orders requests
// It retrieves every order row, ordered by id.
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	orders, err := h.orderStore.List(r.Context())
	if err != nil {
		// Database error text is surfaced to the client verbatim.
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	response := make([]OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, orderToResponse(order))
	}

	log.Debug("listed orders", slog.Int("count", len(response)))
	shared.RespondWithJSON(w, r, http.StatusOK, response)
}

// CreateOrder handles POST /orders requests
// It validates the payload, inserts a row and returns the new order
// with its database-assigned id.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "body", Message: "invalid JSON body"},
		})
		return
	}

	// Normalize before validating so whitespace-only names fail the
	// min length rule.
	req.Name = domain.NormalizeOrderName(req.Name)

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, shared.ValidationFieldErrors(err))
		return
	}

	order, err := domain.NewOrder(req.Name, req.Quantity)
	if err != nil {
		log.Warn("order construction failed", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "body", Message: err.Error()},
		})
		return
	}

	created, err := h.orderStore.Create(r.Context(), order)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	log.Debug("order created", slog.Int64("order_id", created.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, orderToResponse(*created))
}

// UpdateOrder handles PATCH /orders/{id} requests
// It applies a partial update; only fields present in the body change.
// A body with no updatable fields is rejected before touching the
// database rather than producing a degenerate statement.
func (h *OrderHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r)
	if err != nil {
		log.Warn("invalid order id in path")
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "id", Message: "must be an integer"},
		})
		return
	}

	var req UpdateOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "body", Message: "invalid JSON body"},
		})
		return
	}

	if req.Name != nil {
		normalized := domain.NormalizeOrderName(*req.Name)
		req.Name = &normalized
	}

	if req.Name == nil && req.Quantity == nil {
		log.Warn("partial update with no fields", slog.Int64("order_id", id))
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "body", Message: "no fields to update"},
		})
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, shared.ValidationFieldErrors(err))
		return
	}

	patch := domain.OrderPatch{Name: req.Name, Quantity: req.Quantity}
	affected, err := h.orderStore.Update(r.Context(), id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNoFieldsToUpdate) {
			shared.RespondWithValidationErrors(w, r, []shared.FieldError{
				{Field: "body", Message: "no fields to update"},
			})
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	log.Debug("order updated",
		slog.Int64("order_id", id),
		slog.Int64("affected_rows", affected))
	shared.RespondWithJSON(w, r, http.StatusOK, MutationResponse{
		Msg:          "Order updated successfully",
		AffectedRows: affected,
	})
}

// ReplaceOrder handles PUT /orders/{id} requests
// It fully replaces the order's name and quantity. A missing id yields
// affectedRows 0 with status 200: this is an update, not an upsert.
func (h *OrderHandler) ReplaceOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r)
	if err != nil {
		log.Warn("invalid order id in path")
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "id", Message: "must be an integer"},
		})
		return
	}

	var req ReplaceOrderRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "body", Message: "invalid JSON body"},
		})
		return
	}

	req.Name = domain.NormalizeOrderName(req.Name)

	if err := shared.ValidateRequest(req); err != nil {
		log.Warn("validation error", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, shared.ValidationFieldErrors(err))
		return
	}

	order, err := domain.NewOrder(req.Name, req.Quantity)
	if err != nil {
		log.Warn("order construction failed", slog.String("error", err.Error()))
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "body", Message: err.Error()},
		})
		return
	}

	affected, err := h.orderStore.Replace(r.Context(), id, order)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	log.Debug("order replaced",
		slog.Int64("order_id", id),
		slog.Int64("affected_rows", affected))
	shared.RespondWithJSON(w, r, http.StatusOK, MutationResponse{
		Msg:          "Order updated successfully",
		AffectedRows: affected,
	})
}

// DeleteOrder handles DELETE /orders/{id} requests
// It removes the order with the given id. A missing id yields
// affectedRows 0 with status 200.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathID(r)
	if err != nil {
		log.Warn("invalid order id in path")
		shared.RespondWithValidationErrors(w, r, []shared.FieldError{
			{Field: "id", Message: "must be an integer"},
		})
		return
	}

	affected, err := h.orderStore.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, err.Error(), err)
		return
	}

	log.Debug("order deleted",
		slog.Int64("order_id", id),
		slog.Int64("affected_rows", affected))
	shared.RespondWithJSON(w, r, http.StatusOK, MutationResponse{
		Msg:          "Order deleted successfully",
		AffectedRows: affected,
	})
}

// orderToResponse converts a domain.Order to an OrderResponse
func orderToResponse(order domain.Order) OrderResponse {
	return OrderResponse{
		ID:       order.ID,
		Name:     order.Name,
		Quantity: order.Quantity,
	}
}
