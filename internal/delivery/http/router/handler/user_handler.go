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

// UserHandler holds dependencies for account and registration handlers.
type UserHandler struct {
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(dispatch usecase.DispatchUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		dispatch: dispatch,
		logger:   logger,
	}
}

// SetSessionInput selects the acting user for this instance.
type SetSessionInput struct {
	UserID string `json:"user_id" validate:"required"`
}

// SetSession sets the current user from the locally known accounts.
func (h *UserHandler) SetSession(c echo.Context) error {
	var input SetSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	for _, user := range h.dispatch.Snapshot().Users {
		if user.ID == input.UserID {
			h.dispatch.Dispatch(c.Request().Context(), state.SetUser{User: &user})

			return response.Success(c, http.StatusOK, user, "Session user set successfully")
		}
	}

	return response.NotFound(c, "USER_NOT_FOUND", "No user with that id is known locally")
}

// ClearSession drops the current user.
func (h *UserHandler) ClearSession(c echo.Context) error {
	h.dispatch.Dispatch(c.Request().Context(), state.SetUser{User: nil})

	return response.Success(c, http.StatusOK, nil, "Session cleared successfully")
}

// AddUser creates an account directly, bypassing the registration queue.
func (h *UserHandler) AddUser(c echo.Context) error {
	var user entity.User
	if err := c.Bind(&user); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid user input")
	}
	if !user.Role.IsValid() {
		return response.BadRequest(c, "INVALID_ROLE", "Unknown user role")
	}

	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	if user.Status == "" {
		user.Status = entity.UserStatusActive
	}

	h.dispatch.Dispatch(c.Request().Context(), state.AddUser{User: user})

	return response.Success(c, http.StatusCreated, user, "User created successfully")
}

// Register files a pending registration for admin review.
func (h *UserHandler) Register(c echo.Context) error {
	var pending entity.PendingUser
	if err := c.Bind(&pending); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if pending.Role != entity.RoleWholesaler && pending.Role != entity.RoleRetailer {
		return response.BadRequest(c, "INVALID_ROLE", "Only wholesaler and retailer may self-register")
	}

	if pending.ID == "" {
		pending.ID = uuid.NewString()
	}
	if pending.SubmittedAt.IsZero() {
		pending.SubmittedAt = time.Now()
	}

	h.dispatch.Dispatch(c.Request().Context(), state.AddPendingUser{PendingUser: pending})

	return response.Success(c, http.StatusCreated, pending, "Registration submitted successfully")
}

// ReviewInput identifies the reviewing admin and an optional reason.
type ReviewInput struct {
	AdminID string `json:"admin_id" validate:"required"`
	Reason  string `json:"reason"`
}

// ApproveRegistration promotes a pending registration into a full account.
func (h *UserHandler) ApproveRegistration(c echo.Context) error {
	var input ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	pendingID := c.Param("id")
	h.dispatch.Dispatch(c.Request().Context(), state.ApproveUser{
		PendingUserID: pendingID,
		AdminID:       input.AdminID,
	})

	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().PendingUsers, "Registration approved")
}

// RejectRegistration removes a pending registration.
func (h *UserHandler) RejectRegistration(c echo.Context) error {
	var input ReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	h.dispatch.Dispatch(c.Request().Context(), state.RejectUser{
		PendingUserID: c.Param("id"),
		AdminID:       input.AdminID,
		Reason:        input.Reason,
	})

	return response.Success(c, http.StatusOK, nil, "Registration rejected")
}

// BulkVerifyInput lists the accounts to mark verified.
type BulkVerifyInput struct {
	UserIDs []string `json:"user_ids" validate:"required,min=1"`
}

// BulkVerify marks a batch of accounts as verified.
func (h *UserHandler) BulkVerify(c echo.Context) error {
	var input BulkVerifyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid bulk verify input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	h.dispatch.Dispatch(c.Request().Context(), state.BulkVerifyUsers{UserIDs: input.UserIDs})

	return response.Success(c, http.StatusOK, nil, "Users verified")
}

// Suspend clears the verified flag on one account.
func (h *UserHandler) Suspend(c echo.Context) error {
	h.dispatch.Dispatch(c.Request().Context(), state.SuspendUser{UserID: c.Param("id")})

	return response.Success(c, http.StatusOK, nil, "User suspended")
}
