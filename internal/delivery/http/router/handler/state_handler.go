// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"bazaar/internal/delivery/http/response"
	"bazaar/internal/usecase"

	"github.com/labstack/echo/v4"
)

// StateHandler serves read access to the synchronized local state.
type StateHandler struct {
	dispatch usecase.DispatchUsecase
	sync     usecase.SyncUsecase
	logger   *slog.Logger
}

// NewStateHandler is the constructor for StateHandler, injected by Fx.
func NewStateHandler(dispatch usecase.DispatchUsecase, sync usecase.SyncUsecase, logger *slog.Logger) *StateHandler {
	return &StateHandler{
		dispatch: dispatch,
		sync:     sync,
		logger:   logger,
	}
}

// GetState returns the full local state snapshot.
func (h *StateHandler) GetState(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot(), "State retrieved successfully")
}

// GetUsers returns all users known locally.
func (h *StateHandler) GetUsers(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().Users, "Users retrieved successfully")
}

// GetPendingUsers returns registrations awaiting review.
func (h *StateHandler) GetPendingUsers(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().PendingUsers, "Pending users retrieved successfully")
}

// GetProducts returns the product catalog.
func (h *StateHandler) GetProducts(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().Products, "Products retrieved successfully")
}

// GetOrders returns all orders with their items.
func (h *StateHandler) GetOrders(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().Orders, "Orders retrieved successfully")
}

// GetTickets returns all support tickets.
func (h *StateHandler) GetTickets(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().Tickets, "Tickets retrieved successfully")
}

// GetPromotions returns all promotions.
func (h *StateHandler) GetPromotions(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().Promotions, "Promotions retrieved successfully")
}

// GetReturnRequests returns all return requests with their items.
func (h *StateHandler) GetReturnRequests(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().ReturnRequests, "Return requests retrieved successfully")
}

// GetSettings returns the effective platform settings.
func (h *StateHandler) GetSettings(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().PlatformSettings, "Settings retrieved successfully")
}

// GetAnalytics returns the platform analytics block.
func (h *StateHandler) GetAnalytics(c echo.Context) error {
	snap := h.dispatch.Snapshot()

	return response.Success(c, http.StatusOK, map[string]any{
		"analytics":            snap.Analytics,
		"wholesaler_analytics": snap.WholesalerAnalytics,
	}, "Analytics retrieved successfully")
}

// GetSystemStats returns operational platform statistics.
func (h *StateHandler) GetSystemStats(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.dispatch.Snapshot().SystemStats, "System stats retrieved successfully")
}

// Refresh forces one full re-read of every remote table.
func (h *StateHandler) Refresh(c echo.Context) error {
	if err := h.sync.Refresh(c.Request().Context()); err != nil {
		h.logger.Warn("Manual refresh failed", slog.Any("error", err))

		return response.Error(c, http.StatusBadGateway, "REFRESH_FAILED", "Refresh from remote store failed", err.Error())
	}

	return response.Success(c, http.StatusOK, nil, "State refreshed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
