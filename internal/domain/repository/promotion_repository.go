package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrPromotionNotFound is returned when a promotion cannot be located.
var ErrPromotionNotFound = errors.New("promotion not found")

// PromotionRepository handles persistence for promotion campaigns.
type PromotionRepository interface {
	// Create persists a new promotion.
	Create(ctx context.Context, promotion *entity.Promotion) error

	// Update replaces the mutable columns of an existing promotion, including
	// the review metadata written by approve/reject.
	Update(ctx context.Context, promotion *entity.Promotion) error

	// ListAll returns every promotion row.
	ListAll(ctx context.Context) ([]entity.Promotion, error)
}
