package entity

import "time"

// Product is a wholesale listing owned by a wholesaler. Prices are per
// case/pack as listed, and MinOrderQuantity is the smallest quantity a
// retailer may order.
type Product struct {
	ID               string    `json:"id"`
	WholesalerID     string    `json:"wholesaler_id"` // Owning user; must reference a wholesaler account.
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	Price            float64   `json:"price"` // Unit price, >= 0.
	Stock            int       `json:"stock"` // Units on hand, >= 0.
	MinOrderQuantity int       `json:"min_order_quantity"` // Smallest orderable quantity, >= 1.
	Category         string    `json:"category"`
	ImageURL         string    `json:"image_url"`
	Available        bool      `json:"available"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
