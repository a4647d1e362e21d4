// Package model contains the GORM-specific structs mirroring the remote
// database schema. Column names are snake_case; monetary columns are numeric
// and surface as strings, parsed to float64 by the repository mappers.
package model

import "time"

// UserModel is the GORM-specific struct for the 'users' table.
type UserModel struct {
	ID           string `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string `gorm:"type:text;not null"`
	Email        string `gorm:"type:text;not null;uniqueIndex"`
	Role         string `gorm:"type:text;not null"`
	BusinessName string `gorm:"type:text"`
	Phone        string `gorm:"type:text"`
	Address      string `gorm:"type:text"`
	Verified     bool   `gorm:"not null;default:false"`
	Status       string `gorm:"type:text;not null;default:'active'"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
