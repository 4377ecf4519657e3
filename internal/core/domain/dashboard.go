package domain

// DashboardStats is the read-only reporting snapshot for one owner.
// Derived entirely from the product and order stores; never mutates.
type DashboardStats struct {
	TotalProducts int          `json:"total_products"`
	LowStockItems int          `json:"low_stock_items"`
	PendingOrders int          `json:"pending_orders"`
	RecentSales   RecentSales  `json:"recent_sales"`
	TopProducts   []TopProduct `json:"top_products"`
}

// RecentSales is the rolling 30-day sales sum and its percent change
// against the preceding 30-day window.
type RecentSales struct {
	Amount Amount  `json:"amount"`
	Change float64 `json:"change"`
}

type TopProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
