package handler

import (
	"log/slog"
	"net/http"
	"time"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/state"
	"bazaar/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// OrderHandler holds dependencies for order handlers.
type OrderHandler struct {
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler, injected by Fx.
func NewOrderHandler(dispatch usecase.DispatchUsecase, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		dispatch: dispatch,
		logger:   logger,
	}
}

// PlaceOrderInput is the cart a retailer submits. Items reference products by
// id; names and prices are snapshotted from the local catalog.
type PlaceOrderInput struct {
	RetailerID   string `json:"retailer_id" validate:"required"`
	WholesalerID string `json:"wholesaler_id" validate:"required"`
	Items        []struct {
		ProductID string `json:"product_id" validate:"required"`
		Quantity  int    `json:"quantity" validate:"required,min=1"`
	} `json:"items" validate:"required,min=1,dive"`
	Notes string `json:"notes"`
}

// PlaceOrder assembles an order from the cart and dispatches it.
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var input PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	catalog := make(map[string]entity.Product)
	for _, product := range h.dispatch.Snapshot().Products {
		catalog[product.ID] = product
	}

	lines := make([]entity.CartLine, 0, len(input.Items))
	for _, item := range input.Items {
		product, ok := catalog[item.ProductID]
		if !ok {
			return response.NotFound(c, "PRODUCT_NOT_FOUND", "Order references an unknown product")
		}
		lines = append(lines, entity.CartLine{Product: product, Quantity: item.Quantity})
	}

	order := entity.BuildOrder(uuid.NewString(), input.RetailerID, input.WholesalerID, lines, time.Now())
	order.Notes = input.Notes

	h.dispatch.Dispatch(c.Request().Context(), state.AddOrder{Order: order})

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// UpdateOrder replaces the order with the given id. Items are left untouched
// remotely; only the header columns are persisted.
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	var order entity.Order
	if err := c.Bind(&order); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}
	if order.Status != "" && !order.Status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown order status")
	}

	order.ID = c.Param("id")
	order.UpdatedAt = time.Now()

	h.dispatch.Dispatch(c.Request().Context(), state.UpdateOrder{Order: order})

	return response.Success(c, http.StatusOK, order, "Order updated successfully")
}
