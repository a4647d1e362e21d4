package model

import (
	"time"

	"github.com/lib/pq"
)

// PendingUserModel is the GORM-specific struct for the 'pending_users' table.
// Rows are kept after review for auditing; Status moves from pending to
// approved or rejected.
type PendingUserModel struct {
	ID                 string         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name               string         `gorm:"type:text;not null"`
	Email              string         `gorm:"type:text;not null"`
	Role               string         `gorm:"type:text;not null"`
	BusinessName       string         `gorm:"type:text"`
	Phone              string         `gorm:"type:text"`
	Address            string         `gorm:"type:text"`
	RegistrationReason string         `gorm:"type:text"`
	Documents          pq.StringArray `gorm:"type:text[]"`
	Status             string         `gorm:"type:text;not null;default:'pending'"`
	SubmittedAt        time.Time
	ReviewedAt         *time.Time
	ReviewedBy         *string `gorm:"type:uuid"`
	RejectionReason    *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (PendingUserModel) TableName() string {
	return "pending_users"
}
