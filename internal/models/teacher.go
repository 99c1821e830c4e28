package models

// Teacher represents a professor record. DepartmentID references a Department; integrity is
// enforced upstream.
type Teacher struct {
	ID                   int    `json:"id"`
	Email                string `json:"email"`
	ProfessorName        string `json:"professorName"`
	ProfessorPhoneNumber string `json:"professorPhoneNumber"`
	DepartmentID         int    `json:"departmentId"`
}

// Key returns the server-assigned identifier.
func (t Teacher) Key() int { return t.ID }

// Label returns the name used for search matching.
func (t Teacher) Label() string { return t.ProfessorName }

// ProfessorRequest is the mutable part of a teacher sent on create/update.
type ProfessorRequest struct {
	Email                string `json:"email" validate:"required,email"`
	ProfessorName        string `json:"professorName" validate:"required"`
	ProfessorPhoneNumber string `json:"professorPhoneNumber" validate:"required"`
	DepartmentID         int    `json:"departmentId"`
}

// ProfessorDraft copies the mutable fields of t.
func ProfessorDraft(t Teacher) ProfessorRequest {
	return ProfessorRequest{
		Email:                t.Email,
		ProfessorName:        t.ProfessorName,
		ProfessorPhoneNumber: t.ProfessorPhoneNumber,
		DepartmentID:         t.DepartmentID,
	}
}
