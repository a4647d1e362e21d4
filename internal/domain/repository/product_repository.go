package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrProductNotFound is returned when a product cannot be located in the store.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository handles persistence for wholesale product listings.
type ProductRepository interface {
	// Create persists a new product and fills in generated fields.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the mutable columns of an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product row.
	Delete(ctx context.Context, id string) error

	// ListAll returns every product row.
	ListAll(ctx context.Context) ([]entity.Product, error)
}
