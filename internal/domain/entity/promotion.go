package entity

import "time"

// PromotionStatus represents the review state of a promotion.
type PromotionStatus string

const (
	PromotionStatusPending  PromotionStatus = "pending"
	PromotionStatusApproved PromotionStatus = "approved"
	PromotionStatusRejected PromotionStatus = "rejected"
)

// String returns the string representation of the PromotionStatus.
func (s PromotionStatus) String() string {
	return string(s)
}

// IsValid checks if the PromotionStatus is a valid value.
func (s PromotionStatus) IsValid() bool {
	switch s {
	case PromotionStatusPending, PromotionStatusApproved, PromotionStatusRejected:
		return true
	default:
		return false
	}
}

// Promotion is a discount campaign submitted by a wholesaler and reviewed by
// an administrator. Active is true only while the promotion is approved.
type Promotion struct {
	ID              string          `json:"id"`
	WholesalerID    string          `json:"wholesaler_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Discount        float64         `json:"discount"` // Percentage, 1-100.
	ValidFrom       time.Time       `json:"valid_from"`
	ValidTo         time.Time       `json:"valid_to"`
	Active          bool            `json:"active"`
	ProductIDs      []string        `json:"product_ids"`
	Status          PromotionStatus `json:"status"`
	SubmittedAt     time.Time       `json:"submitted_at"`
	ReviewedAt      *time.Time      `json:"reviewed_at,omitempty"`
	ReviewedBy      string          `json:"reviewed_by,omitempty"` // Admin user id.
	RejectionReason string          `json:"rejection_reason,omitempty"`
}
