package entity

import "time"

// OrderStatus represents the fulfilment state of an order. Statuses follow a
// linear progression: pending -> accepted -> ready -> completed, with
// cancelled reachable from any non-terminal state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusAccepted  OrderStatus = "accepted"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusAccepted, OrderStatusReady, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transitions are allowed.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

// CanTransitionTo reports whether the linear progression permits moving from
// the current status to the next one.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == OrderStatusCancelled {
		return true
	}

	switch s {
	case OrderStatusPending:
		return next == OrderStatusAccepted
	case OrderStatusAccepted:
		return next == OrderStatusReady
	case OrderStatusReady:
		return next == OrderStatusCompleted
	default:
		return false
	}
}

// PaymentStatus represents the payment state of an order.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// String returns the string representation of the PaymentStatus.
func (s PaymentStatus) String() string {
	return string(s)
}

// IsValid checks if the PaymentStatus is a valid value.
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusFailed:
		return true
	default:
		return false
	}
}

// OrderItem is a single line of an order. ProductName and Price are
// denormalized snapshots taken at order time so later product edits do not
// alter historical orders.
type OrderItem struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Quantity    int     `json:"quantity"` // >= 1.
	Price       float64 `json:"price"`    // Unit price snapshot at order time.
	Total       float64 `json:"total"`    // Price * Quantity.
}

// Order is a purchase placed by a retailer against a single wholesaler.
// Total must always equal the sum of the item totals.
type Order struct {
	ID            string        `json:"id"`
	RetailerID    string        `json:"retailer_id"`
	WholesalerID  string        `json:"wholesaler_id"`
	Items         []OrderItem   `json:"items"`
	Total         float64       `json:"total"`
	Status        OrderStatus   `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	PickupTime    *time.Time    `json:"pickup_time,omitempty"`
	Notes         string        `json:"notes,omitempty"`
}

// CartLine is one product selection used to build an order.
type CartLine struct {
	Product  Product
	Quantity int
}

// BuildOrder assembles an Order from cart lines, snapshotting product names
// and prices and computing per-item and order totals.
func BuildOrder(id, retailerID, wholesalerID string, lines []CartLine, now time.Time) Order {
	items := make([]OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		lineTotal := line.Product.Price * float64(line.Quantity)
		items = append(items, OrderItem{
			ProductID:   line.Product.ID,
			ProductName: line.Product.Name,
			Quantity:    line.Quantity,
			Price:       line.Product.Price,
			Total:       lineTotal,
		})
		total += lineTotal
	}

	return Order{
		ID:            id,
		RetailerID:    retailerID,
		WholesalerID:  wholesalerID,
		Items:         items,
		Total:         total,
		Status:        OrderStatusPending,
		PaymentStatus: PaymentStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
