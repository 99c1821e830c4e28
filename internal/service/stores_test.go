package service

import (
	"context"
	"errors"
	"sync"

	"github.com/noah-isme/faculty-portal/internal/models"
)

type mockDepartmentStore struct {
	mu        sync.Mutex
	items     []models.Department
	rosters   map[int][]models.Teacher
	listErr   error
	createErr error
	deleted   []int
	rosterHit []int
	nextID    int
}

func (m *mockDepartmentStore) List(ctx context.Context) ([]models.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.Department(nil), m.items...), nil
}

func (m *mockDepartmentStore) Create(ctx context.Context, req models.DepartmentRequest) (models.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return models.Department{}, m.createErr
	}
	m.nextID++
	return models.Department{ID: m.nextID, DepartmentName: req.DepartmentName, DepartmentBuilding: req.DepartmentBuilding}, nil
}

func (m *mockDepartmentStore) Update(ctx context.Context, id int, req models.DepartmentRequest) (models.Department, error) {
	return models.Department{ID: id, DepartmentName: req.DepartmentName, DepartmentBuilding: req.DepartmentBuilding}, nil
}

func (m *mockDepartmentStore) Delete(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *mockDepartmentStore) Professors(ctx context.Context, id int) ([]models.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosterHit = append(m.rosterHit, id)
	return m.rosters[id], nil
}

type mockProfessorStore struct {
	mu      sync.Mutex
	items   []models.Teacher
	listErr error
	nextID  int
}

func (m *mockProfessorStore) List(ctx context.Context) ([]models.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.listErr != nil {
		return nil, m.listErr
	}
	return append([]models.Teacher(nil), m.items...), nil
}

func (m *mockProfessorStore) Create(ctx context.Context, req models.ProfessorRequest) (models.Teacher, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	return models.Teacher{
		ID:                   m.nextID,
		Email:                req.Email,
		ProfessorName:        req.ProfessorName,
		ProfessorPhoneNumber: req.ProfessorPhoneNumber,
		DepartmentID:         req.DepartmentID,
	}, nil
}

func (m *mockProfessorStore) Update(ctx context.Context, id int, req models.ProfessorRequest) (models.Teacher, error) {
	return models.Teacher{ID: id, Email: req.Email, ProfessorName: req.ProfessorName, ProfessorPhoneNumber: req.ProfessorPhoneNumber, DepartmentID: req.DepartmentID}, nil
}

func (m *mockProfessorStore) Delete(ctx context.Context, id int) error {
	return nil
}

// syncDispatcher runs fetches inline.
type syncDispatcher struct{}

func (syncDispatcher) Dispatch(_ string, fn func(ctx context.Context)) error {
	fn(context.Background())
	return nil
}

var errBoom = errors.New("boom")

func sampleDepartments() []models.Department {
	return []models.Department{
		{ID: 1, DepartmentName: "Physics", DepartmentBuilding: 4},
		{ID: 2, DepartmentName: "Law", DepartmentBuilding: 9},
	}
}

func sampleTeachers() []models.Teacher {
	return []models.Teacher{
		{ID: 10, Email: "ada@uni.edu", ProfessorName: "Ada", ProfessorPhoneNumber: "1", DepartmentID: 1},
		{ID: 11, Email: "bob@uni.edu", ProfessorName: "Bob", ProfessorPhoneNumber: "2", DepartmentID: 7},
	}
}

func newTestWorkspace(depts *mockDepartmentStore, profs *mockProfessorStore) *Workspace {
	return NewWorkspace("session-1", WorkspaceDeps{
		Departments: depts,
		Professors:  profs,
		Dispatcher:  syncDispatcher{},
	})
}
