package dto

// ListMeta carries search, paging and status flags shared by every list view.
type ListMeta struct {
	Search       string `json:"search"`
	Page         int    `json:"page"`
	PageCount    int    `json:"pageCount"`
	PageSize     int    `json:"pageSize"`
	Total        int    `json:"total"`
	HasPrevious  bool   `json:"hasPrevious"`
	HasNext      bool   `json:"hasNext"`
	Loading      bool   `json:"loading"`
	Error        string `json:"error,omitempty"`
	EmptyMessage string `json:"emptyMessage,omitempty"`
}

// SearchRequest sets the search term of a list.
type SearchRequest struct {
	Term string `json:"term"`
}

// PageRequest moves a list to a page; out-of-range pages are clamped.
type PageRequest struct {
	Page int `json:"page"`
}

// SessionView is returned when a workspace is created.
type SessionView struct {
	SessionID   string             `json:"sessionId"`
	Departments DepartmentListView `json:"departments"`
	Teachers    TeacherListView    `json:"teachers"`
}
