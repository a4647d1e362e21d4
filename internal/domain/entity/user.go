package entity

import "time"

// UserStatus represents the lifecycle state of a user account.
type UserStatus string

const (
	// UserStatusActive indicates a fully usable account.
	UserStatusActive UserStatus = "active"
	// UserStatusPending indicates an account awaiting review.
	UserStatusPending UserStatus = "pending"
	// UserStatusSuspended indicates an account blocked by an administrator.
	UserStatusSuspended UserStatus = "suspended"
)

// String returns the string representation of the UserStatus.
func (s UserStatus) String() string {
	return string(s)
}

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusPending, UserStatusSuspended:
		return true
	default:
		return false
	}
}

// User is the core account entity. The role is assigned at creation and never
// changes for the lifetime of the account.
type User struct {
	ID           string     `json:"id"`                     // Opaque unique identifier.
	Name         string     `json:"name"`                   // Display name.
	Email        string     `json:"email"`                  // Primary contact email, used as login identifier.
	Role         Role       `json:"role"`                   // wholesaler, retailer, admin or support.
	BusinessName string     `json:"business_name,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	Address      string     `json:"address,omitempty"`
	Verified     bool       `json:"verified"` // Whether the business documents have been verified.
	Status       UserStatus `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
}
