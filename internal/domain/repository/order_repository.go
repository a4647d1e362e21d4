package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrOrderNotFound is returned when an order cannot be located in the store.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository handles persistence for orders and their line items.
//
// Order rows and order_items rows live in separate tables. Create writes the
// parent first and the items second without a wrapping transaction; a failure
// between the two leaves a parent with no items. ListAll fetches both tables
// and joins items to their parent by foreign key before returning.
type OrderRepository interface {
	// Create persists a new order followed by its line items.
	Create(ctx context.Context, order *entity.Order) error

	// Update replaces the mutable columns of the order row. Line items are
	// immutable once written.
	Update(ctx context.Context, order *entity.Order) error

	// ListAll returns every order with its items attached.
	ListAll(ctx context.Context) ([]entity.Order, error)
}
