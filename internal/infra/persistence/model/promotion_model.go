package model

import (
	"time"

	"github.com/lib/pq"
)

// PromotionModel is the GORM-specific struct for the 'promotions' table.
// Discount is numeric in the database and read back as text.
type PromotionModel struct {
	ID              string         `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WholesalerID    string         `gorm:"type:uuid;not null;index"`
	Title           string         `gorm:"type:text;not null"`
	Description     string         `gorm:"type:text"`
	Discount        string         `gorm:"type:numeric(5,2);not null"`
	ValidFrom       time.Time      `gorm:"not null"`
	ValidTo         time.Time      `gorm:"not null"`
	Active          bool           `gorm:"not null;default:false"`
	ProductIDs      pq.StringArray `gorm:"column:product_ids;type:text[]"`
	Status          string         `gorm:"type:text;not null;default:'pending'"`
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
	ReviewedBy      *string `gorm:"type:uuid"`
	RejectionReason *string `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (PromotionModel) TableName() string {
	return "promotions"
}
