package apiclient

import (
	"context"
	"fmt"

	"github.com/noah-isme/faculty-portal/internal/models"
)

const (
	departmentsPath = "/departments"
	professorsPath  = "/professors"
)

// DepartmentStore exposes the department endpoints.
type DepartmentStore struct {
	client *Client
}

// Departments returns the department endpoints of c.
func (c *Client) Departments() *DepartmentStore {
	return &DepartmentStore{client: c}
}

// List returns every department.
func (s *DepartmentStore) List(ctx context.Context) ([]models.Department, error) {
	var out []models.Department
	if err := s.client.Get(ctx, departmentsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a department and returns it with its server-assigned id.
func (s *DepartmentStore) Create(ctx context.Context, req models.DepartmentRequest) (models.Department, error) {
	var out models.Department
	if err := s.client.Post(ctx, departmentsPath, req, &out); err != nil {
		return models.Department{}, err
	}
	return out, nil
}

// Update replaces the mutable fields of department id.
func (s *DepartmentStore) Update(ctx context.Context, id int, req models.DepartmentRequest) (models.Department, error) {
	var out models.Department
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%d", departmentsPath, id), req, &out); err != nil {
		return models.Department{}, err
	}
	return out, nil
}

// Delete removes department id.
func (s *DepartmentStore) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", departmentsPath, id))
}

// Professors returns the teachers attached to department id.
func (s *DepartmentStore) Professors(ctx context.Context, id int) ([]models.Teacher, error) {
	var out models.DepartmentProfessors
	if err := s.client.Get(ctx, fmt.Sprintf("%s/%d/professors", departmentsPath, id), &out); err != nil {
		return nil, err
	}
	if out.Professors == nil {
		return []models.Teacher{}, nil
	}
	return out.Professors, nil
}

// ProfessorStore exposes the professor endpoints.
type ProfessorStore struct {
	client *Client
}

// Professors returns the professor endpoints of c.
func (c *Client) Professors() *ProfessorStore {
	return &ProfessorStore{client: c}
}

// List returns every teacher.
func (s *ProfessorStore) List(ctx context.Context) ([]models.Teacher, error) {
	var out []models.Teacher
	if err := s.client.Get(ctx, professorsPath, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a teacher and returns it with its server-assigned id.
func (s *ProfessorStore) Create(ctx context.Context, req models.ProfessorRequest) (models.Teacher, error) {
	var out models.Teacher
	if err := s.client.Post(ctx, professorsPath, req, &out); err != nil {
		return models.Teacher{}, err
	}
	return out, nil
}

// Update replaces the mutable fields of teacher id.
func (s *ProfessorStore) Update(ctx context.Context, id int, req models.ProfessorRequest) (models.Teacher, error) {
	var out models.Teacher
	if err := s.client.Put(ctx, fmt.Sprintf("%s/%d", professorsPath, id), req, &out); err != nil {
		return models.Teacher{}, err
	}
	return out, nil
}

// Delete removes teacher id.
func (s *ProfessorStore) Delete(ctx context.Context, id int) error {
	return s.client.Delete(ctx, fmt.Sprintf("%s/%d", professorsPath, id))
}
