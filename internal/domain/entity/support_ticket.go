package entity

import "time"

// TicketStatus represents the handling state of a support ticket.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusResolved   TicketStatus = "resolved"
	TicketStatusClosed     TicketStatus = "closed"
)

// String returns the string representation of the TicketStatus.
func (s TicketStatus) String() string {
	return string(s)
}

// IsValid checks if the TicketStatus is a valid value.
func (s TicketStatus) IsValid() bool {
	switch s {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return true
	default:
		return false
	}
}

// Priority represents the urgency of a support ticket or return request.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// String returns the string representation of the Priority.
func (p Priority) String() string {
	return string(p)
}

// IsValid checks if the Priority is a valid value.
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	default:
		return false
	}
}

// SupportTicket is a request for help raised by any platform user. UserName is
// a denormalized snapshot of the reporter's display name.
type SupportTicket struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	UserName    string       `json:"user_name"`
	Subject     string       `json:"subject"`
	Description string       `json:"description"`
	Status      TicketStatus `json:"status"`
	Priority    Priority     `json:"priority"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	AssignedTo  string       `json:"assigned_to,omitempty"` // Support agent user id, empty when unassigned.
}
