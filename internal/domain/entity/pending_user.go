package entity

import "time"

// PendingUser is a registration staging record. It is promoted to a User when
// an administrator approves the application and discarded on rejection.
type PendingUser struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Email              string    `json:"email"`
	Role               Role      `json:"role"` // Only wholesaler and retailer may self-register.
	BusinessName       string    `json:"business_name"`
	Phone              string    `json:"phone"`
	Address            string    `json:"address"`
	RegistrationReason string    `json:"registration_reason"`
	SubmittedAt        time.Time `json:"submitted_at"`
	Documents          []string  `json:"documents,omitempty"` // Uploaded verification document names.
}

// Promote builds the active, verified User created when the application is
// approved. The staging record itself is discarded by the caller.
func (p PendingUser) Promote(id string, now time.Time) User {
	return User{
		ID:           id,
		Name:         p.Name,
		Email:        p.Email,
		Role:         p.Role,
		BusinessName: p.BusinessName,
		Phone:        p.Phone,
		Address:      p.Address,
		Verified:     true,
		Status:       UserStatusActive,
		CreatedAt:    now,
	}
}
