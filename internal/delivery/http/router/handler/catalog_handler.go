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

// CatalogHandler holds dependencies for product catalog handlers.
type CatalogHandler struct {
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(dispatch usecase.DispatchUsecase, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		dispatch: dispatch,
		logger:   logger,
	}
}

// AddProduct creates a catalog entry.
func (h *CatalogHandler) AddProduct(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if product.WholesalerID == "" || product.Name == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Wholesaler id and name are required")
	}

	if product.ID == "" {
		product.ID = uuid.NewString()
	}
	now := time.Now()
	if product.CreatedAt.IsZero() {
		product.CreatedAt = now
	}
	product.UpdatedAt = now

	h.dispatch.Dispatch(c.Request().Context(), state.AddProduct{Product: product})

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct replaces the catalog entry with the given id. An unknown id
// is acknowledged without effect.
func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	var product entity.Product
	if err := c.Bind(&product); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product.ID = c.Param("id")
	product.UpdatedAt = time.Now()

	h.dispatch.Dispatch(c.Request().Context(), state.UpdateProduct{Product: product})

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a catalog entry.
func (h *CatalogHandler) DeleteProduct(c echo.Context) error {
	h.dispatch.Dispatch(c.Request().Context(), state.DeleteProduct{ProductID: c.Param("id")})

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}
