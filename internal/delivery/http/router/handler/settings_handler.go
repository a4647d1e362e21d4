package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/domain/entity"
	"bazaar/internal/state"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SettingsHandler holds dependencies for platform administration handlers.
type SettingsHandler struct {
	dispatch usecase.DispatchUsecase
	logger   *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(dispatch usecase.DispatchUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		dispatch: dispatch,
		logger:   logger,
	}
}

// UpdateSettings applies a partial settings patch. Absent fields keep their
// current values.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var patch entity.SettingsPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings patch")
	}

	h.dispatch.Dispatch(c.Request().Context(), state.UpdatePlatformSettings{Patch: patch})

	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().PlatformSettings, "Settings updated successfully")
}

// ResetSettings restores every setting to its default value.
func (h *SettingsHandler) ResetSettings(c echo.Context) error {
	h.dispatch.Dispatch(c.Request().Context(), state.ResetSettings{})

	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().PlatformSettings, "Settings reset to defaults")
}

// BroadcastInput is a platform-wide announcement.
type BroadcastInput struct {
	Message string `json:"message" validate:"required"`
	Type    string `json:"type" validate:"required,oneof=info warning maintenance"`
}

// Broadcast sends an announcement. The local state is left untouched.
func (h *SettingsHandler) Broadcast(c echo.Context) error {
	var input BroadcastInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid announcement input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	h.dispatch.Dispatch(c.Request().Context(), state.BroadcastAnnouncement{
		Message: input.Message,
		Type:    input.Type,
	})

	return response.Success(c, http.StatusOK, nil, "Announcement broadcast")
}
