package repository

import (
	"context"

	"bazaar/internal/domain/entity"
	"bazaar/internal/errors"
)

// ErrTicketNotFound is returned when a support ticket cannot be located.
var ErrTicketNotFound = errors.New("support ticket not found")

// TicketRepository handles persistence for support tickets.
type TicketRepository interface {
	// Create persists a new support ticket.
	Create(ctx context.Context, ticket *entity.SupportTicket) error

	// Update replaces the mutable columns of an existing ticket.
	Update(ctx context.Context, ticket *entity.SupportTicket) error

	// ListAll returns every ticket row.
	ListAll(ctx context.Context) ([]entity.SupportTicket, error)
}
