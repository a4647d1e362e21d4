// Package service defines infrastructure contracts the domain depends on.
package service

import "context"

// Table names the remote tables a change event can refer to.
const (
	TableUsers          = "users"
	TablePendingUsers   = "pending_users"
	TableProducts       = "products"
	TableOrders         = "orders"
	TableOrderItems     = "order_items"
	TableSupportTickets = "support_tickets"
	TablePromotions     = "promotions"
	TableReturnRequests = "return_requests"
	TableReturnItems    = "return_items"
	TableSettings       = "platform_settings"
)

// ChangeEvent announces that a row in a remote table changed. Consumers do
// not receive the row itself; any event triggers a full refresh of every
// table, so Table and Op are informational.
type ChangeEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing.
	Table     string `json:"table"`
	Op        string `json:"op"` // insert, update or delete.
	RowID     string `json:"row_id,omitempty"`
}

// ChangePublisher publishes change events after successful remote writes so
// other running instances converge.
type ChangePublisher interface {
	// PublishChange publishes one change event.
	PublishChange(ctx context.Context, event *ChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}

// ChangeFeed delivers change events published by any instance, including this
// one. Subscribe registers a handler and returns an unsubscribe function.
type ChangeFeed interface {
	// Subscribe registers a handler invoked for every received event. The
	// returned function removes the subscription.
	Subscribe(handler func(event *ChangeEvent)) (unsubscribe func())

	// Close stops delivery and releases resources.
	Close() error
}
