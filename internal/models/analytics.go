package models

// DayRevenue is one point of the per-day revenue series, keyed by
// weekday abbreviation in order of first appearance.
type DayRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
}

// ChefOrderCount is the number of orders ever assigned to one chef.
type ChefOrderCount struct {
	Name   string `json:"name"`
	Orders int    `json:"orders"`
}

// AnalyticsSnapshot is an ephemeral projection recomputed from the
// engine's current state on every request. It is never persisted;
// staleness is bounded only by how often a viewer polls.
type AnalyticsSnapshot struct {
	TotalChefs            int              `json:"total_chefs"`
	TotalRevenue          float64          `json:"total_revenue"`
	TotalOrders           int              `json:"total_orders"`
	TotalClients          int              `json:"total_clients"`
	OrdersByType          map[string]int   `json:"orders_by_type"`
	OrdersByStatus        map[string]int   `json:"orders_by_status"`
	RevenueByDay          []DayRevenue     `json:"revenue_by_day"`
	ChefOrderDistribution []ChefOrderCount `json:"chef_order_distribution"`
}
