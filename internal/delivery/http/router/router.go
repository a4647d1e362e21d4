// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	StateHandler     *handler.StateHandler
	UserHandler      *handler.UserHandler
	CatalogHandler   *handler.CatalogHandler
	OrderHandler     *handler.OrderHandler
	SupportHandler   *handler.SupportHandler
	PromotionHandler *handler.PromotionHandler
	SettingsHandler  *handler.SettingsHandler
	PushHandler      *handler.PushHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	state     *handler.StateHandler
	user      *handler.UserHandler
	catalog   *handler.CatalogHandler
	order     *handler.OrderHandler
	support   *handler.SupportHandler
	promotion *handler.PromotionHandler
	settings  *handler.SettingsHandler
	push      *handler.PushHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		state:     params.StateHandler,
		user:      params.UserHandler,
		catalog:   params.CatalogHandler,
		order:     params.OrderHandler,
		support:   params.SupportHandler,
		promotion: params.PromotionHandler,
		settings:  params.SettingsHandler,
		push:      params.PushHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Read access to the synchronized local state
	stateGroup := e.Group("/state")
	{
		stateGroup.GET("", r.state.GetState)
		stateGroup.GET("/users", r.state.GetUsers)
		stateGroup.GET("/pending-users", r.state.GetPendingUsers)
		stateGroup.GET("/products", r.state.GetProducts)
		stateGroup.GET("/orders", r.state.GetOrders)
		stateGroup.GET("/tickets", r.state.GetTickets)
		stateGroup.GET("/promotions", r.state.GetPromotions)
		stateGroup.GET("/returns", r.state.GetReturnRequests)
		stateGroup.GET("/settings", r.state.GetSettings)
		stateGroup.GET("/analytics", r.state.GetAnalytics)
		stateGroup.GET("/system-stats", r.state.GetSystemStats)
		stateGroup.POST("/refresh", r.state.Refresh)
	}

	// Session selection for this instance
	e.POST("/session", r.user.SetSession)
	e.DELETE("/session", r.user.ClearSession)

	// Accounts and registration review
	e.POST("/users", r.user.AddUser)
	e.POST("/users/bulk-verify", r.user.BulkVerify)
	e.POST("/users/:id/suspend", r.user.Suspend)
	e.POST("/registrations", r.user.Register)
	e.POST("/registrations/:id/approve", r.user.ApproveRegistration)
	e.POST("/registrations/:id/reject", r.user.RejectRegistration)

	// Product catalog
	e.POST("/products", r.catalog.AddProduct)
	e.PUT("/products/:id", r.catalog.UpdateProduct)
	e.DELETE("/products/:id", r.catalog.DeleteProduct)

	// Orders
	e.POST("/orders", r.order.PlaceOrder)
	e.PUT("/orders/:id", r.order.UpdateOrder)

	// Support tickets and returns
	e.POST("/tickets", r.support.AddTicket)
	e.PUT("/tickets/:id", r.support.UpdateTicket)
	e.POST("/returns", r.support.AddReturnRequest)
	e.PUT("/returns/:id", r.support.UpdateReturnRequest)
	e.POST("/returns/:id/approve", r.support.ApproveReturnRequest)
	e.POST("/returns/:id/reject", r.support.RejectReturnRequest)

	// Promotions
	e.POST("/promotions", r.promotion.AddPromotion)
	e.PUT("/promotions/:id", r.promotion.UpdatePromotion)
	e.POST("/promotions/:id/approve", r.promotion.ApprovePromotion)
	e.POST("/promotions/:id/reject", r.promotion.RejectPromotion)

	// Platform administration
	e.PATCH("/settings", r.settings.UpdateSettings)
	e.POST("/settings/reset", r.settings.ResetSettings)
	e.POST("/announcements", r.settings.Broadcast)

	// Pub/Sub push subscription endpoint
	e.POST("/pubsub/push", r.push.Receive)
}
