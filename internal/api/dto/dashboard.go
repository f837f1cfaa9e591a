package dto

// DashboardStatsResponse is the headline widget payload for the admin
// dashboard.
type DashboardStatsResponse struct {
	TotalTenants     int `json:"total_tenants"`
	ActiveTenants    int `json:"active_tenants"`
	TotalRequests    int `json:"total_requests"`
	PendingRequests  int `json:"pending_requests"`
	ApprovedRequests int `json:"approved_requests"`
	RejectedRequests int `json:"rejected_requests"`
}

// MonthlyGrowthPoint is one month in the growth series.
type MonthlyGrowthPoint struct {
	// Month is formatted as YYYY-MM.
	Month    string `json:"month"`
	Requests int    `json:"requests"`
	Tenants  int    `json:"tenants"`
}

// DashboardGrowthResponse is the trailing monthly growth series, oldest
// month first.
type DashboardGrowthResponse struct {
	Months []MonthlyGrowthPoint `json:"months"`
}
