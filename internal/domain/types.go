package domain

// Pagination carries paging params and the total reported by the fleet API.
// Total counts the whole upstream collection, not the fetched page.
type Pagination struct {
	Page     int `json:"page"`
	PageSize int `json:"pageSize"`
	Total    int `json:"total"`
}

// Option is a selectable (value, label) pair for dashboard filter dropdowns.
type Option struct {
	Value int64  `json:"value"`
	Label string `json:"label"`
}

// RequestContext carries authenticated admin info when available.
type RequestContext struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}
