package state

import (
	"time"

	"bazaar/internal/domain/entity"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time { return &t }

func ptrFloat(f float64) *float64 { return &f }

// Seed returns the demonstration dataset the store starts from. It serves the
// dashboards until the first successful remote refresh overlays it, and keeps
// serving if the remote store is unreachable.
func Seed() State {
	return State{
		Loading:          true,
		PlatformSettings: entity.DefaultPlatformSettings(),
		SystemStats: entity.SystemStats{
			ServerUptime:           99.8,
			ResponseTime:           245,
			ActiveSessions:         1247,
			DailyTransactions:      342,
			TransactionSuccessRate: 98.5,
			FailedPayments:         5,
			DailyActiveUsers:       892,
			NewRegistrations:       23,
			BounceRate:             12.3,
		},
		Users: []entity.User{
			{
				ID:           "1",
				Name:         "John Wholesaler",
				Email:        "john@wholesale.com",
				Role:         entity.RoleWholesaler,
				BusinessName: "Fresh Foods Wholesale",
				Phone:        "+27-123-456-789",
				Address:      "123 Market Street, Johannesburg",
				Verified:     true,
				Status:       entity.UserStatusActive,
				CreatedAt:    day(2024, time.January, 15),
			},
			{
				ID:           "2",
				Name:         "Mary Retailer",
				Email:        "mary@spaza.com",
				Role:         entity.RoleRetailer,
				BusinessName: "Mary's Spaza Shop",
				Phone:        "+27-987-654-321",
				Address:      "45 Township Road, Soweto",
				Verified:     true,
				Status:       entity.UserStatusActive,
				CreatedAt:    day(2024, time.January, 20),
			},
			{
				ID:        "3",
				Name:      "Admin User",
				Email:     "admin@nwi.com",
				Role:      entity.RoleAdmin,
				Verified:  true,
				Status:    entity.UserStatusActive,
				CreatedAt: day(2024, time.January, 1),
			},
			{
				ID:        "4",
				Name:      "Support Agent",
				Email:     "support@nwi.com",
				Role:      entity.RoleSupport,
				Verified:  true,
				Status:    entity.UserStatusActive,
				CreatedAt: day(2024, time.January, 1),
			},
		},
		PendingUsers: []entity.PendingUser{
			{
				ID:                 "p1",
				Name:               "Sarah Johnson",
				Email:              "sarah@freshmarket.co.za",
				Role:               entity.RoleRetailer,
				BusinessName:       "Fresh Market Corner Store",
				Phone:              "+27-111-222-333",
				Address:            "78 Main Road, Cape Town",
				RegistrationReason: "Looking to expand our product range and establish wholesale partnerships for better pricing.",
				SubmittedAt:        day(2024, time.January, 25),
				Documents:          []string{"business_license.pdf", "tax_certificate.pdf"},
			},
			{
				ID:                 "p2",
				Name:               "David Wholesale Co",
				Email:              "david@bulkgoods.co.za",
				Role:               entity.RoleWholesaler,
				BusinessName:       "Bulk Goods Distribution",
				Phone:              "+27-444-555-666",
				Address:            "156 Industrial Avenue, Durban",
				RegistrationReason: "Established wholesale business seeking to expand our retail network through digital platform.",
				SubmittedAt:        day(2024, time.January, 24),
				Documents:          []string{"wholesale_license.pdf", "vat_registration.pdf", "warehouse_certificate.pdf"},
			},
			{
				ID:                 "p3",
				Name:               "Lisa Community Store",
				Email:              "lisa@communitystore.co.za",
				Role:               entity.RoleRetailer,
				BusinessName:       "Community General Store",
				Phone:              "+27-777-888-999",
				Address:            "23 Township Street, Pretoria",
				RegistrationReason: "Community store serving local township, need access to wholesale prices to serve community better.",
				SubmittedAt:        day(2024, time.January, 23),
			},
		},
		Products: []entity.Product{
			{
				ID:               "1",
				WholesalerID:     "1",
				Name:             "Coca-Cola 330ml Cans (24 Pack)",
				Description:      "Classic Coca-Cola in 330ml cans, case of 24 units",
				Price:            240,
				Stock:            500,
				MinOrderQuantity: 10,
				Category:         "Beverages",
				ImageURL:         "https://images.pexels.com/photos/50593/coca-cola-cold-drink-soft-drink-coke-50593.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
			{
				ID:               "2",
				WholesalerID:     "1",
				Name:             "Lay's Potato Chips 120g (12 Pack)",
				Description:      "Original flavor Lay's potato chips, 120g bags, case of 12",
				Price:            180,
				Stock:            300,
				MinOrderQuantity: 5,
				Category:         "Snacks",
				ImageURL:         "https://images.pexels.com/photos/4958792/pexels-photo-4958792.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
			{
				ID:               "3",
				WholesalerID:     "1",
				Name:             "Maggi 2-Minute Noodles (24 Pack)",
				Description:      "Chicken flavor instant noodles, 73g each, case of 24",
				Price:            120,
				Stock:            400,
				MinOrderQuantity: 12,
				Category:         "Instant Foods",
				ImageURL:         "https://images.pexels.com/photos/6287284/pexels-photo-6287284.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
			{
				ID:               "4",
				WholesalerID:     "1",
				Name:             "Sunlight Dishwashing Liquid 750ml (12 Pack)",
				Description:      "Sunlight dishwashing liquid, 750ml bottles, case of 12",
				Price:            360,
				Stock:            150,
				MinOrderQuantity: 6,
				Category:         "Household",
				ImageURL:         "https://images.pexels.com/photos/4107845/pexels-photo-4107845.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
			{
				ID:               "5",
				WholesalerID:     "1",
				Name:             "Simba Chips Assorted 36g (24 Pack)",
				Description:      "Mixed flavors Simba chips, 36g bags, case of 24",
				Price:            144,
				Stock:            250,
				MinOrderQuantity: 8,
				Category:         "Snacks",
				ImageURL:         "https://images.pexels.com/photos/4958792/pexels-photo-4958792.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
			{
				ID:               "6",
				WholesalerID:     "1",
				Name:             "Fanta Orange 500ml (12 Pack)",
				Description:      "Fanta Orange soft drink, 500ml bottles, case of 12",
				Price:            156,
				Stock:            200,
				MinOrderQuantity: 6,
				Category:         "Beverages",
				ImageURL:         "https://images.pexels.com/photos/2775860/pexels-photo-2775860.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
			{
				ID:               "7",
				WholesalerID:     "1",
				Name:             "Omo Washing Powder 2kg (6 Pack)",
				Description:      "Omo auto washing powder, 2kg boxes, case of 6",
				Price:            480,
				Stock:            100,
				MinOrderQuantity: 3,
				Category:         "Household",
				ImageURL:         "https://images.pexels.com/photos/5591663/pexels-photo-5591663.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
			{
				ID:               "8",
				WholesalerID:     "1",
				Name:             "Knorr Soup 50g (20 Pack)",
				Description:      "Chicken noodle soup sachets, 50g each, case of 20",
				Price:            100,
				Stock:            300,
				MinOrderQuantity: 10,
				Category:         "Instant Foods",
				ImageURL:         "https://images.pexels.com/photos/6287339/pexels-photo-6287339.jpeg",
				Available:        true,
				CreatedAt:        day(2024, time.January, 15),
				UpdatedAt:        day(2024, time.January, 15),
			},
		},
		Orders: []entity.Order{
			{
				ID:           "1",
				RetailerID:   "2",
				WholesalerID: "1",
				Items: []entity.OrderItem{
					{ProductID: "1", ProductName: "Coca-Cola 330ml Cans (24 Pack)", Quantity: 10, Price: 240, Total: 2400},
					{ProductID: "2", ProductName: "Lay's Potato Chips 120g (12 Pack)", Quantity: 5, Price: 180, Total: 900},
				},
				Total:         3300,
				Status:        entity.OrderStatusPending,
				PaymentStatus: entity.PaymentStatusPending,
				CreatedAt:     day(2024, time.January, 22),
				UpdatedAt:     day(2024, time.January, 22),
			},
			{
				ID:           "2",
				RetailerID:   "2",
				WholesalerID: "1",
				Items: []entity.OrderItem{
					{ProductID: "3", ProductName: "Maggi 2-Minute Noodles (24 Pack)", Quantity: 12, Price: 120, Total: 1440},
				},
				Total:         1440,
				Status:        entity.OrderStatusReady,
				PaymentStatus: entity.PaymentStatusPaid,
				CreatedAt:     day(2024, time.January, 20),
				UpdatedAt:     day(2024, time.January, 21),
			},
			{
				ID:           "3",
				RetailerID:   "2",
				WholesalerID: "1",
				Items: []entity.OrderItem{
					{ProductID: "4", ProductName: "Sunlight Dishwashing Liquid 750ml (12 Pack)", Quantity: 6, Price: 360, Total: 2160},
				},
				Total:         2160,
				Status:        entity.OrderStatusCompleted,
				PaymentStatus: entity.PaymentStatusPaid,
				CreatedAt:     day(2024, time.January, 18),
				UpdatedAt:     day(2024, time.January, 19),
			},
		},
		Tickets: []entity.SupportTicket{
			{
				ID:          "1",
				UserID:      "2",
				UserName:    "Mary Retailer",
				Subject:     "Payment Issue",
				Description: "Unable to complete payment for order #1. Payment gateway shows error.",
				Status:      entity.TicketStatusOpen,
				Priority:    entity.PriorityHigh,
				CreatedAt:   day(2024, time.January, 22),
				UpdatedAt:   day(2024, time.January, 22),
			},
			{
				ID:          "2",
				UserID:      "2",
				UserName:    "Mary Retailer",
				Subject:     "Product Quality Issue",
				Description: "Received damaged Coca-Cola cans in last order. Need replacement.",
				Status:      entity.TicketStatusInProgress,
				Priority:    entity.PriorityMedium,
				CreatedAt:   day(2024, time.January, 21),
				UpdatedAt:   day(2024, time.January, 22),
				AssignedTo:  "4",
			},
			{
				ID:          "3",
				UserID:      "1",
				UserName:    "John Wholesaler",
				Subject:     "Stock Update Issue",
				Description: "Unable to update stock levels for multiple products.",
				Status:      entity.TicketStatusResolved,
				Priority:    entity.PriorityLow,
				CreatedAt:   day(2024, time.January, 19),
				UpdatedAt:   day(2024, time.January, 20),
				AssignedTo:  "4",
			},
		},
		Promotions: []entity.Promotion{
			{
				ID:           "1",
				WholesalerID: "1",
				Title:        "Beverage Bundle Deal",
				Description:  "15% off when you buy 20+ cases of any beverages",
				Discount:     15,
				ValidFrom:    day(2024, time.January, 20),
				ValidTo:      day(2024, time.February, 20),
				Active:       true,
				ProductIDs:   []string{"1", "6"},
				Status:       entity.PromotionStatusApproved,
				SubmittedAt:  day(2024, time.January, 20),
				ReviewedAt:   ptrTime(day(2024, time.January, 20)),
				ReviewedBy:   "3",
			},
			{
				ID:           "2",
				WholesalerID: "1",
				Title:        "Snack Attack Special",
				Description:  "10% off all snack products for bulk orders",
				Discount:     10,
				ValidFrom:    day(2024, time.January, 15),
				ValidTo:      day(2024, time.February, 15),
				Active:       true,
				ProductIDs:   []string{"2", "5"},
				Status:       entity.PromotionStatusApproved,
				SubmittedAt:  day(2024, time.January, 15),
				ReviewedAt:   ptrTime(day(2024, time.January, 15)),
				ReviewedBy:   "3",
			},
			{
				ID:           "3",
				WholesalerID: "1",
				Title:        "Household Essentials Promo",
				Description:  "20% off household cleaning products",
				Discount:     20,
				ValidFrom:    day(2024, time.January, 25),
				ValidTo:      day(2024, time.February, 25),
				Active:       false,
				ProductIDs:   []string{"4", "7"},
				Status:       entity.PromotionStatusPending,
				SubmittedAt:  day(2024, time.January, 25),
			},
		},
		ReturnRequests: []entity.ReturnRequest{
			{
				ID:              "1",
				OrderID:         "3",
				RetailerID:      "2",
				WholesalerID:    "1",
				Reason:          "damaged_goods",
				Description:     "Received damaged Sunlight dishwashing liquid bottles. 3 out of 12 bottles were cracked and leaking.",
				Status:          entity.ReturnStatusPending,
				Priority:        entity.PriorityHigh,
				RequestedAmount: 90,
				Items: []entity.ReturnItem{
					{
						ProductID:   "4",
						ProductName: "Sunlight Dishwashing Liquid 750ml",
						Quantity:    3,
						Reason:      "Bottles arrived cracked and leaking",
						Condition:   entity.ItemConditionDamaged,
						UnitPrice:   30,
						TotalRefund: 90,
					},
				},
				Images:    []string{"https://images.pexels.com/photos/4107845/pexels-photo-4107845.jpeg"},
				CreatedAt: day(2024, time.January, 23),
				UpdatedAt: day(2024, time.January, 23),
			},
			{
				ID:              "2",
				OrderID:         "1",
				RetailerID:      "2",
				WholesalerID:    "1",
				Reason:          "wrong_quantity",
				Description:     "Ordered 10 cases of Coca-Cola but only received 8 cases. Missing 2 cases from the shipment.",
				Status:          entity.ReturnStatusApproved,
				Priority:        entity.PriorityMedium,
				RequestedAmount: 480,
				ApprovedAmount:  ptrFloat(480),
				Items: []entity.ReturnItem{
					{
						ProductID:   "1",
						ProductName: "Coca-Cola 330ml Cans (24 Pack)",
						Quantity:    2,
						Reason:      "Missing from shipment",
						Condition:   entity.ItemConditionNotAsDescribed,
						UnitPrice:   240,
						TotalRefund: 480,
					},
				},
				CreatedAt:    day(2024, time.January, 21),
				UpdatedAt:    day(2024, time.January, 22),
				ProcessedBy:  "4",
				ProcessedAt:  ptrTime(day(2024, time.January, 22)),
				RefundMethod: entity.RefundMethodOriginalPayment,
			},
			{
				ID:              "3",
				OrderID:         "2",
				RetailerID:      "2",
				WholesalerID:    "1",
				Reason:          "quality_issue",
				Description:     "Maggi noodles have expired dates. All 24 packs show expiry date of last month.",
				Status:          entity.ReturnStatusProcessing,
				Priority:        entity.PriorityUrgent,
				RequestedAmount: 1440,
				ApprovedAmount:  ptrFloat(1440),
				Items: []entity.ReturnItem{
					{
						ProductID:   "3",
						ProductName: "Maggi 2-Minute Noodles (24 Pack)",
						Quantity:    12,
						Reason:      "Expired products received",
						Condition:   entity.ItemConditionDefective,
						UnitPrice:   120,
						TotalRefund: 1440,
					},
				},
				CreatedAt:      day(2024, time.January, 20),
				UpdatedAt:      day(2024, time.January, 23),
				ProcessedBy:    "4",
				ProcessedAt:    ptrTime(day(2024, time.January, 22)),
				RefundMethod:   entity.RefundMethodStoreCredit,
				TrackingNumber: "RT123456789",
			},
		},
		Analytics: entity.Analytics{
			TotalRevenue:  185000,
			TotalOrders:   67,
			TotalUsers:    342,
			TotalProducts: 8,
			MonthlyRevenue: []entity.MonthlyRevenue{
				{Month: "Oct", Revenue: 35000},
				{Month: "Nov", Revenue: 42000},
				{Month: "Dec", Revenue: 38000},
				{Month: "Jan", Revenue: 70000},
			},
			OrdersByStatus: []entity.StatusCount{
				{Status: "completed", Count: 45},
				{Status: "pending", Count: 12},
				{Status: "ready", Count: 8},
				{Status: "accepted", Count: 2},
			},
			TopProducts: []entity.ProductSales{
				{Name: "Coca-Cola 330ml Cans", Sales: 1200},
				{Name: "Maggi 2-Minute Noodles", Sales: 980},
				{Name: "Lay's Potato Chips", Sales: 750},
				{Name: "Fanta Orange 500ml", Sales: 650},
				{Name: "Simba Chips Assorted", Sales: 580},
			},
		},
		WholesalerAnalytics: []entity.WholesalerAnalytics{
			{
				WholesalerID:      "1",
				WholesalerName:    "John Wholesaler",
				BusinessName:      "Fresh Foods Wholesale",
				TotalRevenue:      185000,
				TotalOrders:       67,
				TotalProducts:     8,
				ActivePromotions:  2,
				AverageOrderValue: 2761,
				MonthlyRevenue: []entity.MonthlyRevenue{
					{Month: "Oct", Revenue: 35000},
					{Month: "Nov", Revenue: 42000},
					{Month: "Dec", Revenue: 38000},
					{Month: "Jan", Revenue: 70000},
				},
				OrdersByStatus: []entity.StatusCount{
					{Status: "completed", Count: 45},
					{Status: "pending", Count: 12},
					{Status: "ready", Count: 8},
					{Status: "accepted", Count: 2},
				},
				TopProducts: []entity.ProductSales{
					{Name: "Coca-Cola 330ml Cans", Sales: 1200, Revenue: 288000},
					{Name: "Maggi 2-Minute Noodles", Sales: 980, Revenue: 117600},
					{Name: "Lay's Potato Chips", Sales: 750, Revenue: 135000},
					{Name: "Fanta Orange 500ml", Sales: 650, Revenue: 101400},
					{Name: "Simba Chips Assorted", Sales: 580, Revenue: 83520},
				},
				CustomerCount:      45,
				RepeatCustomerRate: 68.5,
				StockTurnover:      4.2,
				PromotionPerformance: []entity.PromotionPerformance{
					{Title: "Beverage Bundle Deal", OrdersGenerated: 23, Revenue: 55200},
					{Title: "Snack Attack Special", OrdersGenerated: 18, Revenue: 32400},
				},
				RecentActivity: []entity.ActivityEntry{
					{Date: "2024-01-25", Activity: "New Order", Value: "R3,200"},
					{Date: "2024-01-24", Activity: "Product Added", Value: "Sunlight Soap"},
					{Date: "2024-01-23", Activity: "Promotion Created", Value: "Household Essentials"},
					{Date: "2024-01-22", Activity: "Order Fulfilled", Value: "R1,800"},
					{Date: "2024-01-21", Activity: "New Customer", Value: "Thabo's Store"},
				},
				JoinDate:        "2024-01-15",
				LastOrderDate:   "2024-01-25",
				TotalCustomers:  45,
				AverageRating:   4.7,
				SupportTickets:  3,
				ReturnRate:      2.1,
				FulfillmentRate: 97.8,
			},
		},
	}
}
