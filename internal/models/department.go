package models

// Department represents an academic department as served by the upstream API.
type Department struct {
	ID                 int    `json:"id"`
	DepartmentName     string `json:"departmentName"`
	DepartmentBuilding int    `json:"departmentBuilding"`
}

// Key returns the server-assigned identifier.
func (d Department) Key() int { return d.ID }

// Label returns the name used for search matching.
func (d Department) Label() string { return d.DepartmentName }

// DepartmentRequest is the mutable part of a department sent on create/update.
type DepartmentRequest struct {
	DepartmentName     string `json:"departmentName" validate:"required"`
	DepartmentBuilding int    `json:"departmentBuilding"`
}

// DepartmentDraft copies the mutable fields of d.
func DepartmentDraft(d Department) DepartmentRequest {
	return DepartmentRequest{
		DepartmentName:     d.DepartmentName,
		DepartmentBuilding: d.DepartmentBuilding,
	}
}

// DepartmentProfessors is the envelope returned by the department roster endpoint.
type DepartmentProfessors struct {
	Professors []Teacher `json:"professors"`
}
