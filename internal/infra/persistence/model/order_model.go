package model

import "time"

// OrderModel is the GORM-specific struct for the 'orders' table. Line items
// live in the separate 'order_items' table and are joined by the repository,
// not preloaded by GORM.
type OrderModel struct {
	ID            string `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RetailerID    string `gorm:"type:uuid;not null;index"`
	WholesalerID  string `gorm:"type:uuid;not null;index"`
	Total         string `gorm:"type:numeric(12,2);not null"`
	Status        string `gorm:"type:text;not null;default:'pending'"`
	PaymentStatus string `gorm:"type:text;not null;default:'pending'"`
	PickupTime    *time.Time
	Notes         string `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// ProductName and Price are denormalized snapshots taken at order time.
type OrderItemModel struct {
	ID          string `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OrderID     string `gorm:"type:uuid;not null;index"`
	ProductID   string `gorm:"type:uuid;not null"`
	ProductName string `gorm:"type:text;not null"`
	Quantity    int    `gorm:"not null"`
	Price       string `gorm:"type:numeric(12,2);not null"`
	Total       string `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
