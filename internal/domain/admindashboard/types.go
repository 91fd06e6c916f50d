package admindashboard

import (
	"jaanmak/internal/domain/catalog"
	"jaanmak/internal/domain/orders"
)

type Overview struct {
	// Revenue
	TotalRevenue int64          `json:"total_revenue"`
	Revenue      []RevenuePoint `json:"revenue"`
	ChartMax     int64          `json:"chart_max"`

	// Orders
	TotalOrders  int                   `json:"total_orders"`
	PaidOrders   int                   `json:"paid_orders"`
	ActiveOrders int                   `json:"active_orders"`
	ByStatus     map[orders.Status]int `json:"by_status"`
	RecentOrders []orders.Order        `json:"recent_orders"`

	// Products
	TotalProducts int               `json:"total_products"`
	LowStock      []catalog.Product `json:"low_stock"`

	// Users
	TotalUsers     int `json:"total_users"`
	TotalCustomers int `json:"total_customers"`
	TotalAdmins    int `json:"total_admins"`
}

// RevenuePoint is one bar of the revenue chart.
type RevenuePoint struct {
	Label  string `json:"label"` // short weekday, e.g. Mon
	Amount int64  `json:"amount"`
}
