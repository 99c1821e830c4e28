package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/faculty-portal/internal/viewmodel"
)

// Workspace is the set of views owned by one portal session.
type Workspace struct {
	ID          string
	CreatedAt   time.Time
	Departments *DepartmentView
	Teachers    *TeacherView

	closeOnce sync.Once
}

// WorkspaceDeps are the collaborators shared by every workspace.
type WorkspaceDeps struct {
	Departments departmentStore
	Professors  professorStore
	Dispatcher  viewmodel.Dispatcher
	Validator   *validator.Validate
	Logger      *zap.Logger
}

// NewWorkspace wires a department view and a teacher view that resolves names from it.
func NewWorkspace(id string, deps WorkspaceDeps) *Workspace {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := deps.Validator
	if validate == nil {
		validate = validator.New()
	}
	logger = logger.With(zap.String("session_id", id))

	departments := NewDepartmentView(deps.Departments, deps.Dispatcher, validate, logger)
	return &Workspace{
		ID:          id,
		CreatedAt:   time.Now().UTC(),
		Departments: departments,
		Teachers:    NewTeacherView(deps.Professors, departments.Names(), validate, logger),
	}
}

// Load fetches both collections concurrently. Each view records its own failure; the joined
// error is returned for logging.
func (w *Workspace) Load(ctx context.Context) error {
	var (
		wg                  sync.WaitGroup
		deptErr, teacherErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		deptErr = w.Departments.Load(ctx)
	}()
	go func() {
		defer wg.Done()
		teacherErr = w.Teachers.Load(ctx)
	}()
	wg.Wait()
	return errors.Join(deptErr, teacherErr)
}

// Close tears down every view. Safe to call more than once.
func (w *Workspace) Close() {
	w.closeOnce.Do(func() {
		w.Departments.Close()
		w.Teachers.Close()
	})
}
