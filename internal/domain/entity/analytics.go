package entity

// MonthlyRevenue is one month of aggregated revenue.
type MonthlyRevenue struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// StatusCount is the number of orders in a given status.
type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ProductSales is aggregated sales volume for one product.
type ProductSales struct {
	Name    string  `json:"name"`
	Sales   int     `json:"sales"`
	Revenue float64 `json:"revenue,omitempty"`
}

// Analytics is the platform-wide aggregate view shown on the admin dashboard.
// It is demo-seeded only; there is no remote table behind it.
type Analytics struct {
	TotalRevenue   float64          `json:"total_revenue"`
	TotalOrders    int              `json:"total_orders"`
	TotalUsers     int              `json:"total_users"`
	TotalProducts  int              `json:"total_products"`
	MonthlyRevenue []MonthlyRevenue `json:"monthly_revenue"`
	OrdersByStatus []StatusCount    `json:"orders_by_status"`
	TopProducts    []ProductSales   `json:"top_products"`
}

// PromotionPerformance is the order volume attributed to one promotion.
type PromotionPerformance struct {
	Title           string  `json:"title"`
	OrdersGenerated int     `json:"orders_generated"`
	Revenue         float64 `json:"revenue"`
}

// ActivityEntry is one line of the recent activity feed.
type ActivityEntry struct {
	Date     string `json:"date"`
	Activity string `json:"activity"`
	Value    string `json:"value"`
}

// WholesalerAnalytics is the per-wholesaler aggregate view shown on the
// wholesaler dashboard. Demo-seeded only, like Analytics.
type WholesalerAnalytics struct {
	WholesalerID         string                 `json:"wholesaler_id"`
	WholesalerName       string                 `json:"wholesaler_name"`
	BusinessName         string                 `json:"business_name"`
	TotalRevenue         float64                `json:"total_revenue"`
	TotalOrders          int                    `json:"total_orders"`
	TotalProducts        int                    `json:"total_products"`
	ActivePromotions     int                    `json:"active_promotions"`
	AverageOrderValue    float64                `json:"average_order_value"`
	MonthlyRevenue       []MonthlyRevenue       `json:"monthly_revenue"`
	OrdersByStatus       []StatusCount          `json:"orders_by_status"`
	TopProducts          []ProductSales         `json:"top_products"`
	CustomerCount        int                    `json:"customer_count"`
	RepeatCustomerRate   float64                `json:"repeat_customer_rate"`
	StockTurnover        float64                `json:"stock_turnover"`
	PromotionPerformance []PromotionPerformance `json:"promotion_performance"`
	RecentActivity       []ActivityEntry        `json:"recent_activity"`
	JoinDate             string                 `json:"join_date"`
	LastOrderDate        string                 `json:"last_order_date"`
	TotalCustomers       int                    `json:"total_customers"`
	AverageRating        float64                `json:"average_rating"`
	SupportTickets       int                    `json:"support_tickets"`
	ReturnRate           float64                `json:"return_rate"`
	FulfillmentRate      float64                `json:"fulfillment_rate"`
}

// SystemStats is the operational health snapshot shown on the admin dashboard.
type SystemStats struct {
	ServerUptime           float64 `json:"server_uptime"`
	ResponseTime           float64 `json:"response_time"`
	ActiveSessions         int     `json:"active_sessions"`
	DailyTransactions      int     `json:"daily_transactions"`
	TransactionSuccessRate float64 `json:"transaction_success_rate"`
	FailedPayments         int     `json:"failed_payments"`
	DailyActiveUsers       int     `json:"daily_active_users"`
	NewRegistrations       int     `json:"new_registrations"`
	BounceRate             float64 `json:"bounce_rate"`
}
