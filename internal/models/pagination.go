package models

// Pagination describes the page currently exposed by a list view.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	PageCount  int `json:"page_count"`
	TotalCount int `json:"total_count"`
}
