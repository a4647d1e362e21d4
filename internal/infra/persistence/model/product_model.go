package model

import "time"

// ProductModel is the GORM-specific struct for the 'products' table.
// Price is numeric in the database and read back as text.
type ProductModel struct {
	ID               string `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WholesalerID     string `gorm:"type:uuid;not null;index"`
	Name             string `gorm:"type:text;not null"`
	Description      string `gorm:"type:text"`
	Price            string `gorm:"type:numeric(12,2);not null"`
	Stock            int    `gorm:"not null;default:0"`
	MinOrderQuantity int    `gorm:"not null;default:1"`
	Category         string `gorm:"type:text"`
	ImageURL         string `gorm:"column:image_url;type:text"`
	Available        bool   `gorm:"not null;default:true"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
