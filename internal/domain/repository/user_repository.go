// Package repository defines the persistence contracts the domain depends on.
// Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrUserNotFound is returned when a user cannot be located in the store.
var ErrUserNotFound = errors.New("user not found")

// UserRepository handles persistence for user accounts.
type UserRepository interface {
	// Create persists a new user and fills in generated fields (id, timestamps).
	Create(ctx context.Context, user *entity.User) error

	// Update replaces the mutable columns of an existing user.
	Update(ctx context.Context, user *entity.User) error

	// ListAll returns every user row.
	ListAll(ctx context.Context) ([]entity.User, error)
}
