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

// SupportHandler holds dependencies for ticket and return request handlers.
type SupportHandler struct {
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(dispatch usecase.DispatchUsecase, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		dispatch: dispatch,
		logger:   logger,
	}
}

// AddTicket files a support ticket.
func (h *SupportHandler) AddTicket(c echo.Context) error {
	var ticket entity.SupportTicket
	if err := c.Bind(&ticket); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}
	if ticket.UserID == "" || ticket.Subject == "" {
		return response.BadRequest(c, "INVALID_INPUT", "User id and subject are required")
	}

	if ticket.ID == "" {
		ticket.ID = uuid.NewString()
	}
	now := time.Now()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	ticket.UpdatedAt = now
	if ticket.Status == "" {
		ticket.Status = entity.TicketStatusOpen
	}

	h.dispatch.Dispatch(c.Request().Context(), state.AddTicket{Ticket: ticket})

	return response.Success(c, http.StatusCreated, ticket, "Ticket created successfully")
}

// UpdateTicket replaces the ticket with the given id.
func (h *SupportHandler) UpdateTicket(c echo.Context) error {
	var ticket entity.SupportTicket
	if err := c.Bind(&ticket); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid ticket input")
	}
	if ticket.Status != "" && !ticket.Status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown ticket status")
	}

	ticket.ID = c.Param("id")
	ticket.UpdatedAt = time.Now()

	h.dispatch.Dispatch(c.Request().Context(), state.UpdateTicket{Ticket: ticket})

	return response.Success(c, http.StatusOK, ticket, "Ticket updated successfully")
}

// AddReturnRequest files a return request against an order.
func (h *SupportHandler) AddReturnRequest(c echo.Context) error {
	var request entity.ReturnRequest
	if err := c.Bind(&request); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return request input")
	}
	if request.OrderID == "" || request.RetailerID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Order id and retailer id are required")
	}

	if request.ID == "" {
		request.ID = uuid.NewString()
	}
	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now
	if request.Status == "" {
		request.Status = entity.ReturnStatusPending
	}

	h.dispatch.Dispatch(c.Request().Context(), state.AddReturnRequest{Request: request})

	return response.Success(c, http.StatusCreated, request, "Return request created successfully")
}

// UpdateReturnRequest replaces the return request with the given id.
func (h *SupportHandler) UpdateReturnRequest(c echo.Context) error {
	var request entity.ReturnRequest
	if err := c.Bind(&request); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid return request input")
	}
	if request.Status != "" && !request.Status.IsValid() {
		return response.BadRequest(c, "INVALID_STATUS", "Unknown return status")
	}

	request.ID = c.Param("id")
	request.UpdatedAt = time.Now()

	h.dispatch.Dispatch(c.Request().Context(), state.UpdateReturnRequest{Request: request})

	return response.Success(c, http.StatusOK, request, "Return request updated successfully")
}

// ApproveReturnInput carries the support verdict for an approved return.
type ApproveReturnInput struct {
	SupportID      string  `json:"support_id" validate:"required"`
	ApprovedAmount float64 `json:"approved_amount" validate:"required,gt=0"`
	RefundMethod   string  `json:"refund_method" validate:"required"`
}

// ApproveReturnRequest approves a return and records the refund verdict.
func (h *SupportHandler) ApproveReturnRequest(c echo.Context) error {
	var input ApproveReturnInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid approval input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	method := entity.RefundMethod(input.RefundMethod)
	if !method.IsValid() {
		return response.BadRequest(c, "INVALID_REFUND_METHOD", "Unknown refund method")
	}

	h.dispatch.Dispatch(c.Request().Context(), state.ApproveReturnRequest{
		RequestID:      c.Param("id"),
		SupportID:      input.SupportID,
		ApprovedAmount: input.ApprovedAmount,
		RefundMethod:   method,
	})

	return response.Success(c, http.StatusOK, nil, "Return request approved")
}

// RejectReturnInput carries the support verdict for a rejected return.
type RejectReturnInput struct {
	SupportID string `json:"support_id" validate:"required"`
	Reason    string `json:"reason" validate:"required"`
}

// RejectReturnRequest rejects a return with a reason.
func (h *SupportHandler) RejectReturnRequest(c echo.Context) error {
	var input RejectReturnInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rejection input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	h.dispatch.Dispatch(c.Request().Context(), state.RejectReturnRequest{
		RequestID: c.Param("id"),
		SupportID: input.SupportID,
		Reason:    input.Reason,
	})

	return response.Success(c, http.StatusOK, nil, "Return request rejected")
}
