package dto

import "github.com/noah-isme/faculty-portal/internal/models"

// TeacherRow is one visible row of the teacher list with its department name resolved.
type TeacherRow struct {
	models.Teacher
	DepartmentName string `json:"departmentName"`
}

// TeacherListView is the teacher view state consumed by presentation.
type TeacherListView struct {
	ListMeta
	Rows []TeacherRow    `json:"rows"`
	Form TeacherFormView `json:"form"`
}

// DepartmentOption feeds the department select of the teacher form.
type DepartmentOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// TeacherFormView is the teacher form state.
type TeacherFormView struct {
	Mode              string                  `json:"mode"`
	EditingID         *int                    `json:"editingId,omitempty"`
	Draft             models.ProfessorRequest `json:"draft"`
	DepartmentOptions []DepartmentOption      `json:"departmentOptions"`
}
