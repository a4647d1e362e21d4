package model

import (
	"time"

	"github.com/lib/pq"
)

// ReturnRequestModel is the GORM-specific struct for the 'return_requests'
// table. Returned items live in the separate 'return_items' table and are
// joined by the repository.
type ReturnRequestModel struct {
	ID              string         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID         string         `gorm:"type:uuid;not null;index"`
	RetailerID      string         `gorm:"type:uuid;not null;index"`
	WholesalerID    string         `gorm:"type:uuid;not null;index"`
	Reason          string         `gorm:"type:text;not null"`
	Description     string         `gorm:"type:text"`
	Status          string         `gorm:"type:text;not null;default:'pending'"`
	Priority        string         `gorm:"type:text;not null;default:'medium'"`
	RequestedAmount string         `gorm:"type:numeric(12,2);not null"`
	ApprovedAmount  *string        `gorm:"type:numeric(12,2)"`
	Images          pq.StringArray `gorm:"type:text[]"`
	ProcessedBy     *string        `gorm:"type:uuid"`
	ProcessedAt     *time.Time
	RejectionReason *string `gorm:"type:text"`
	RefundMethod    *string `gorm:"type:text"`
	TrackingNumber  *string `gorm:"type:text"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ReturnRequestModel) TableName() string {
	return "return_requests"
}

// ReturnItemModel is the GORM-specific struct for the 'return_items' table.
type ReturnItemModel struct {
	ID              string `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ReturnRequestID string `gorm:"type:uuid;not null;index"`
	ProductID       string `gorm:"type:uuid;not null"`
	ProductName     string `gorm:"type:text;not null"`
	Quantity        int    `gorm:"not null"`
	Reason          string `gorm:"type:text"`
	Condition       string `gorm:"type:text;not null"`
	UnitPrice       string `gorm:"type:numeric(12,2);not null"`
	TotalRefund     string `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (ReturnItemModel) TableName() string {
	return "return_items"
}
