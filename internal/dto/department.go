package dto

import "github.com/noah-isme/faculty-portal/internal/models"

// DepartmentRow is one visible row of the department list.
type DepartmentRow struct {
	ID                 int    `json:"id"`
	DepartmentName     string `json:"departmentName"`
	DepartmentBuilding int    `json:"departmentBuilding"`
	Expanded           bool   `json:"expanded"`
	TeachersLoading    bool   `json:"teachersLoading"`
}

// DepartmentListView is the department view state consumed by presentation.
type DepartmentListView struct {
	ListMeta
	Rows       []DepartmentRow    `json:"rows"`
	ExpandedID *int               `json:"expandedId,omitempty"`
	Form       DepartmentFormView `json:"form"`
}

// DepartmentFormView is the department form state.
type DepartmentFormView struct {
	Mode      string                   `json:"mode"`
	EditingID *int                     `json:"editingId,omitempty"`
	Draft     models.DepartmentRequest `json:"draft"`
}

// RosterView is the expansion state of one department.
type RosterView struct {
	DepartmentID   int              `json:"departmentId"`
	DepartmentName string           `json:"departmentName"`
	Expanded       bool             `json:"expanded"`
	Loading        bool             `json:"loading"`
	Loaded         bool             `json:"loaded"`
	Teachers       []models.Teacher `json:"teachers"`
	EmptyMessage   string           `json:"emptyMessage,omitempty"`
}
