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

// PromotionHandler holds dependencies for promotion handlers.
type PromotionHandler struct {
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
}

// NewPromotionHandler is the constructor for PromotionHandler, injected by Fx.
func NewPromotionHandler(dispatch usecase.DispatchUsecase, logger *slog.Logger) *PromotionHandler {
	return &PromotionHandler{
		dispatch: dispatch,
		logger:   logger,
	}
}

// AddPromotion submits a promotion for admin review. New promotions always
// start pending and inactive regardless of the submitted flags.
func (h *PromotionHandler) AddPromotion(c echo.Context) error {
	var promotion entity.Promotion
	if err := c.Bind(&promotion); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if promotion.WholesalerID == "" || promotion.Title == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Wholesaler id and title are required")
	}
	if promotion.Discount <= 0 || promotion.Discount > 100 {
		return response.BadRequest(c, "INVALID_DISCOUNT", "Discount must be a percentage between 1 and 100")
	}

	if promotion.ID == "" {
		promotion.ID = uuid.NewString()
	}
	if promotion.SubmittedAt.IsZero() {
		promotion.SubmittedAt = time.Now()
	}
	promotion.Status = entity.PromotionStatusPending
	promotion.Active = false

	h.dispatch.Dispatch(c.Request().Context(), state.AddPromotion{Promotion: promotion})

	return response.Success(c, http.StatusCreated, promotion, "Promotion submitted successfully")
}

// UpdatePromotion replaces the promotion with the given id.
func (h *PromotionHandler) UpdatePromotion(c echo.Context) error {
	var promotion entity.Promotion
	if err := c.Bind(&promotion); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid promotion input")
	}
	if promotion.Status != "" && !promotion.Status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown promotion status")
	}

	promotion.ID = c.Param("id")

	h.dispatch.Dispatch(c.Request().Context(), state.UpdatePromotion{Promotion: promotion})

	return response.Success(c, http.StatusOK, promotion, "Promotion updated successfully")
}

// ApprovePromotion approves a pending promotion and activates it.
func (h *PromotionHandler) ApprovePromotion(c echo.Context) error {
	var input ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	h.dispatch.Dispatch(c.Request().Context(), state.ApprovePromotion{
		PromotionID: c.Param("id"),
		AdminID:     input.AdminID,
	})

	return response.Success(c, http.StatusOK, nil, "Promotion approved")
}

// RejectPromotion rejects a pending promotion and deactivates it.
func (h *PromotionHandler) RejectPromotion(c echo.Context) error {
	var input ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	h.dispatch.Dispatch(c.Request().Context(), state.RejectPromotion{
		PromotionID: c.Param("id"),
		AdminID:     input.AdminID,
		Reason:      input.Reason,
	})

	return response.Success(c, http.StatusOK, nil, "Promotion rejected")
}
