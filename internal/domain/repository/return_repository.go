package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrReturnNotFound is returned when a return request cannot be located.
var ErrReturnNotFound = errors.New("return request not found")

// ReturnRepository handles persistence for return requests and their items.
//
// Like orders, return requests are stored as a parent row plus child
// return_items rows; Create writes them in two steps without a transaction
// and ListAll joins the child rows back by foreign key.
type ReturnRepository interface {
	// Create persists a new return request followed by its items.
	Create(ctx context.Context, request *entity.ReturnRequest) error

	// Update replaces the mutable columns of the return row (status, amounts,
	// processing metadata). Items are immutable once written.
	Update(ctx context.Context, request *entity.ReturnRequest) error

	// ListAll returns every return request with its items attached.
	ListAll(ctx context.Context) ([]entity.ReturnRequest, error)
}
