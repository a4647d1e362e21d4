package model

import "time"

// SupportTicketModel is the GORM-specific struct for the 'support_tickets' table.
type SupportTicketModel struct {
	ID          string `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      string `gorm:"type:uuid;not null;index"`
	UserName    string `gorm:"type:text;not null"`
	Subject     string `gorm:"type:text;not null"`
	Description string `gorm:"type:text"`
	Status      string `gorm:"type:text;not null;default:'open'"`
	Priority    string `gorm:"type:text;not null;default:'medium'"`
	AssignedTo  *string `gorm:"type:uuid"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupportTicketModel) TableName() string {
	return "support_tickets"
}
