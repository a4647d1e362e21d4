package repository

import (
	"context"
	"time"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrPendingUserNotFound is returned when a staging record cannot be located.
var ErrPendingUserNotFound = errors.New("pending user not found")

// PendingUserRepository handles persistence for registration staging records.
type PendingUserRepository interface {
	// Create persists a new registration application.
	Create(ctx context.Context, pending *entity.PendingUser) error

	// FindByID retrieves a single staging record.
	FindByID(ctx context.Context, id string) (*entity.PendingUser, error)

	// MarkApproved stamps the staging row as approved by the given admin.
	// The row is kept for auditing; promotion to an active user is a separate
	// insert on the users table.
	MarkApproved(ctx context.Context, id, adminID string, reviewedAt time.Time) error

	// MarkRejected stamps the staging row as rejected with a reason.
	MarkRejected(ctx context.Context, id, adminID, reason string, reviewedAt time.Time) error

	// ListAll returns every staging row still awaiting review.
	ListAll(ctx context.Context) ([]entity.PendingUser, error)
}
