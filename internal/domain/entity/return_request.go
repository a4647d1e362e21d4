package entity

import "time"

// ReturnStatus represents the processing state of a return request.
type ReturnStatus string

const (
	ReturnStatusPending    ReturnStatus = "pending"
	ReturnStatusApproved   ReturnStatus = "approved"
	ReturnStatusRejected   ReturnStatus = "rejected"
	ReturnStatusProcessing ReturnStatus = "processing"
	ReturnStatusCompleted  ReturnStatus = "completed"
)

// String returns the string representation of the ReturnStatus.
func (s ReturnStatus) String() string {
	return string(s)
}

// IsValid checks if the ReturnStatus is a valid value.
func (s ReturnStatus) IsValid() bool {
	switch s {
	case ReturnStatusPending, ReturnStatusApproved, ReturnStatusRejected,
		ReturnStatusProcessing, ReturnStatusCompleted:
		return true
	default:
		return false
	}
}

// RefundMethod represents how an approved refund is paid out.
type RefundMethod string

const (
	RefundMethodOriginalPayment RefundMethod = "original_payment"
	RefundMethodStoreCredit     RefundMethod = "store_credit"
	RefundMethodBankTransfer    RefundMethod = "bank_transfer"
)

// String returns the string representation of the RefundMethod.
func (m RefundMethod) String() string {
	return string(m)
}

// IsValid checks if the RefundMethod is a valid value.
func (m RefundMethod) IsValid() bool {
	switch m {
	case RefundMethodOriginalPayment, RefundMethodStoreCredit, RefundMethodBankTransfer:
		return true
	default:
		return false
	}
}

// ItemCondition describes the state of a returned item.
type ItemCondition string

const (
	ItemConditionDamaged        ItemCondition = "damaged"
	ItemConditionDefective      ItemCondition = "defective"
	ItemConditionWrongItem      ItemCondition = "wrong_item"
	ItemConditionNotAsDescribed ItemCondition = "not_as_described"
	ItemConditionOther          ItemCondition = "other"
)

// String returns the string representation of the ItemCondition.
func (c ItemCondition) String() string {
	return string(c)
}

// IsValid checks if the ItemCondition is a valid value.
func (c ItemCondition) IsValid() bool {
	switch c {
	case ItemConditionDamaged, ItemConditionDefective, ItemConditionWrongItem,
		ItemConditionNotAsDescribed, ItemConditionOther:
		return true
	default:
		return false
	}
}

// ReturnItem is a single returned line. ProductName and UnitPrice are
// snapshots taken when the return was filed.
type ReturnItem struct {
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	Quantity    int           `json:"quantity"`
	Reason      string        `json:"reason"`
	Condition   ItemCondition `json:"condition"`
	UnitPrice   float64       `json:"unit_price"`
	TotalRefund float64       `json:"total_refund"`
}

// ReturnRequest is a refund claim filed by a retailer against an order and
// processed by a support agent. ApprovedAmount stays nil until approval.
type ReturnRequest struct {
	ID              string       `json:"id"`
	OrderID         string       `json:"order_id"`
	RetailerID      string       `json:"retailer_id"`
	WholesalerID    string       `json:"wholesaler_id"`
	Reason          string       `json:"reason"`
	Description     string       `json:"description"`
	Status          ReturnStatus `json:"status"`
	Priority        Priority     `json:"priority"`
	RequestedAmount float64      `json:"requested_amount"`
	ApprovedAmount  *float64     `json:"approved_amount,omitempty"`
	Items           []ReturnItem `json:"items"`
	Images          []string     `json:"images,omitempty"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
	ProcessedBy     string       `json:"processed_by,omitempty"` // Support agent user id.
	ProcessedAt     *time.Time   `json:"processed_at,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	RefundMethod    RefundMethod `json:"refund_method,omitempty"`
	TrackingNumber  string       `json:"tracking_number,omitempty"`
}
