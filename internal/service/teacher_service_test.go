package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/faculty-portal/internal/models"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

func TestTeacherViewResolvesDepartmentNames(t *testing.T) {
	ws := newTestWorkspace(&mockDepartmentStore{items: sampleDepartments()}, &mockProfessorStore{items: sampleTeachers()})
	require.NoError(t, ws.Load(context.Background()))

	state := ws.Teachers.State()
	require.Len(t, state.Rows, 2)
	assert.Equal(t, "Physics", state.Rows[0].DepartmentName)
	assert.Equal(t, "Unknown", state.Rows[1].DepartmentName)
	assert.Len(t, state.Form.DepartmentOptions, 2)
}

func TestTeacherViewNamesFollowDepartmentEdits(t *testing.T) {
	ws := newTestWorkspace(&mockDepartmentStore{items: sampleDepartments()}, &mockProfessorStore{items: sampleTeachers()})
	require.NoError(t, ws.Load(context.Background()))

	_, err := ws.Departments.StartEdit(1)
	require.NoError(t, err)
	ws.Departments.SetDraft(models.DepartmentRequest{DepartmentName: "Applied Physics", DepartmentBuilding: 4})
	_, err = ws.Departments.Submit(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Applied Physics", ws.Teachers.State().Rows[0].DepartmentName)
}

func TestTeacherViewSubmitRequiresValidEmail(t *testing.T) {
	ws := newTestWorkspace(&mockDepartmentStore{}, &mockProfessorStore{})
	ws.Teachers.SetDraft(models.ProfessorRequest{Email: "nope", ProfessorName: "Ada", ProfessorPhoneNumber: "1"})

	_, err := ws.Teachers.Submit(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Equal(t, "Please fill in all required fields.", appErrors.FromError(err).Message)
}

func TestTeacherViewCreateAndDelete(t *testing.T) {
	ws := newTestWorkspace(&mockDepartmentStore{items: sampleDepartments()}, &mockProfessorStore{})
	require.NoError(t, ws.Load(context.Background()))
	assert.Equal(t, "No teachers found. Add one below!", ws.Teachers.State().EmptyMessage)

	ws.Teachers.SetDraft(models.ProfessorRequest{Email: "ada@uni.edu", ProfessorName: "Ada", ProfessorPhoneNumber: "1", DepartmentID: 2})
	created, err := ws.Teachers.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Law", ws.Teachers.State().Rows[0].DepartmentName)

	err = ws.Teachers.Delete(context.Background(), created.ID, false)
	assert.Equal(t, "Are you sure you want to delete this teacher?", appErrors.FromError(err).Message)
	require.NoError(t, ws.Teachers.Delete(context.Background(), created.ID, true))
	assert.Equal(t, 0, ws.Teachers.State().Total)
}

func TestTeacherViewDataset(t *testing.T) {
	ws := newTestWorkspace(&mockDepartmentStore{items: sampleDepartments()}, &mockProfessorStore{items: sampleTeachers()})
	require.NoError(t, ws.Load(context.Background()))

	data := ws.Teachers.Dataset()
	require.Len(t, data.Rows, 2)
	assert.Equal(t, []string{"10", "Ada", "ada@uni.edu", "1", "Physics"}, data.Rows[0])
}

func TestWorkspaceLoadReportsEachFailure(t *testing.T) {
	ws := newTestWorkspace(&mockDepartmentStore{listErr: errBoom}, &mockProfessorStore{items: sampleTeachers()})

	err := ws.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Failed to load departments.", ws.Departments.State().Error)
	assert.Empty(t, ws.Teachers.State().Error)
	assert.Equal(t, 2, ws.Teachers.State().Total)
}
