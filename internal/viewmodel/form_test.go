package viewmodel

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/faculty-portal/internal/models"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

func newDepartmentForm(t *testing.T, items []models.Department) (*Form[models.Department, models.DepartmentRequest], *List[models.Department], *fakeDepartmentStore) {
	t.Helper()
	list, store := loadedList(t, items)
	form := NewForm[models.Department, models.DepartmentRequest](list, store, models.DepartmentDraft, nil, nil)
	return form, list, store
}

func TestFormStartsInCreateMode(t *testing.T) {
	form, _, _ := newDepartmentForm(t, nil)

	state := form.State()
	assert.Equal(t, ModeCreate, state.Mode)
	assert.Nil(t, state.EditingID)
	assert.Equal(t, models.DepartmentRequest{}, state.Draft)
}

func TestFormSubmitCreateAppends(t *testing.T) {
	form, list, _ := newDepartmentForm(t, departmentsNamed("Math"))
	form.SetDraft(models.DepartmentRequest{DepartmentName: "Biology", DepartmentBuilding: 7})

	created, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, created.ID)

	items := list.Items()
	require.Len(t, items, 2)
	assert.Equal(t, models.Department{ID: 2, DepartmentName: "Biology", DepartmentBuilding: 7}, items[1])
	assert.Equal(t, ModeCreate, form.State().Mode)
	assert.Equal(t, models.DepartmentRequest{}, form.State().Draft)
}

func TestFormStartEditCopiesFields(t *testing.T) {
	form, _, _ := newDepartmentForm(t, departmentsNamed("Math", "Art"))

	require.NoError(t, form.StartEditByID(2))
	state := form.State()
	assert.Equal(t, ModeEdit, state.Mode)
	require.NotNil(t, state.EditingID)
	assert.Equal(t, 2, *state.EditingID)
	assert.Equal(t, models.DepartmentRequest{DepartmentName: "Art", DepartmentBuilding: 1}, state.Draft)
}

func TestFormStartEditUnknownID(t *testing.T) {
	form, _, _ := newDepartmentForm(t, departmentsNamed("Math"))

	err := form.StartEditByID(42)
	assert.True(t, errors.Is(err, appErrors.ErrNotFound))
	assert.Equal(t, ModeCreate, form.State().Mode)
}

func TestFormSubmitEditReplacesByID(t *testing.T) {
	form, list, store := newDepartmentForm(t, departmentsNamed("Math", "Art"))
	require.NoError(t, form.StartEditByID(1))
	form.SetDraft(models.DepartmentRequest{DepartmentName: "Mathematics", DepartmentBuilding: 3})

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []int{1}, store.updated)

	found, ok := list.Find(1)
	require.True(t, ok)
	assert.Equal(t, "Mathematics", found.DepartmentName)
	assert.Len(t, list.Items(), 2)
	assert.Equal(t, ModeCreate, form.State().Mode)
	assert.Nil(t, form.State().EditingID)
}

func TestFormCreateThenEditCancelRoundTrip(t *testing.T) {
	form, list, _ := newDepartmentForm(t, nil)
	form.SetDraft(models.DepartmentRequest{DepartmentName: "History", DepartmentBuilding: 2})
	created, err := form.Submit(context.Background())
	require.NoError(t, err)

	form.StartEdit(created)
	form.SetDraft(models.DepartmentRequest{DepartmentName: "Changed", DepartmentBuilding: 99})
	form.Cancel()

	stored, ok := list.Find(created.ID)
	require.True(t, ok)
	assert.Equal(t, created, stored)
	assert.Equal(t, ModeCreate, form.State().Mode)
	assert.Equal(t, models.DepartmentRequest{}, form.State().Draft)
}

func TestFormSubmitFailureKeepsCollectionAndDraft(t *testing.T) {
	form, list, store := newDepartmentForm(t, departmentsNamed("Math"))
	store.createErr = errors.New("boom")
	draft := models.DepartmentRequest{DepartmentName: "Biology"}
	form.SetDraft(draft)

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrUpstream))
	assert.Equal(t, "Failed to save department.", list.Snapshot().Error)
	assert.Len(t, list.Items(), 1)
	assert.Equal(t, draft, form.State().Draft)
}

func TestFormSubmitEditFailureLeavesRecord(t *testing.T) {
	form, list, store := newDepartmentForm(t, departmentsNamed("Math"))
	store.updateErr = errors.New("boom")
	require.NoError(t, form.StartEditByID(1))
	form.SetDraft(models.DepartmentRequest{DepartmentName: "Other"})

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	found, _ := list.Find(1)
	assert.Equal(t, "Math", found.DepartmentName)
	assert.Equal(t, ModeEdit, form.State().Mode)
}

func TestFormSubmitRejectsIncompleteDraft(t *testing.T) {
	form, list, store := newDepartmentForm(t, nil)

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
	assert.Empty(t, list.Items())
	assert.Equal(t, 0, store.nextID)
}

func TestFormSuccessClearsPreviousError(t *testing.T) {
	form, list, store := newDepartmentForm(t, nil)
	store.createErr = errors.New("boom")
	form.SetDraft(models.DepartmentRequest{DepartmentName: "Law"})
	_, err := form.Submit(context.Background())
	require.Error(t, err)

	store.createErr = nil
	_, err = form.Submit(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list.Snapshot().Error)
}

func TestTeacherFormValidatesEmail(t *testing.T) {
	list := NewList[models.Teacher](nil, testMessages, nil)
	form := NewForm[models.Teacher, models.ProfessorRequest](list, nil, models.ProfessorDraft, nil, nil)
	form.SetDraft(models.ProfessorRequest{
		Email:                "not-an-email",
		ProfessorName:        "Ada",
		ProfessorPhoneNumber: "555",
	})

	_, err := form.Submit(context.Background())
	assert.True(t, errors.Is(err, appErrors.ErrValidation))
}
