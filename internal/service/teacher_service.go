package service

import (
	"context"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/faculty-portal/internal/dto"
	"github.com/noah-isme/faculty-portal/internal/models"
	"github.com/noah-isme/faculty-portal/internal/viewmodel"
	"github.com/noah-isme/faculty-portal/pkg/export"
)

type professorStore interface {
	List(ctx context.Context) ([]models.Teacher, error)
	Create(ctx context.Context, req models.ProfessorRequest) (models.Teacher, error)
	Update(ctx context.Context, id int, req models.ProfessorRequest) (models.Teacher, error)
	Delete(ctx context.Context, id int) error
}

// TeacherMessages are the strings shown by the teacher view.
var TeacherMessages = viewmodel.Messages{
	Load:    "Failed to load teachers.",
	Save:    "Failed to save teacher.",
	Delete:  "Failed to delete teacher.",
	Confirm: "Are you sure you want to delete this teacher?",
	Empty:   "No teachers found. Add one below!",
}

// TeacherView composes the teacher list and form. Department names come from the workspace's
// department list.
type TeacherView struct {
	list   *viewmodel.List[models.Teacher]
	form   *viewmodel.Form[models.Teacher, models.ProfessorRequest]
	names  *viewmodel.NameResolver
	logger *zap.Logger
}

// NewTeacherView constructs an empty teacher view.
func NewTeacherView(store professorStore, names *viewmodel.NameResolver, validate *validator.Validate, logger *zap.Logger) *TeacherView {
	if logger == nil {
		logger = zap.NewNop()
	}
	list := viewmodel.NewList[models.Teacher](store, TeacherMessages, logger)
	return &TeacherView{
		list:   list,
		form:   viewmodel.NewForm[models.Teacher, models.ProfessorRequest](list, store, models.ProfessorDraft, validate, logger),
		names:  names,
		logger: logger,
	}
}

// Load refreshes the teacher collection.
func (v *TeacherView) Load(ctx context.Context) error {
	return viewError(v.list.Load(ctx))
}

// State builds the current list view with department names resolved.
func (v *TeacherView) State() dto.TeacherListView {
	snap := v.list.Snapshot()
	rows := make([]dto.TeacherRow, 0, len(snap.Rows))
	for _, t := range snap.Rows {
		rows = append(rows, dto.TeacherRow{Teacher: t, DepartmentName: v.names.Resolve(t.DepartmentID)})
	}
	return dto.TeacherListView{
		ListMeta: listMeta(snap, TeacherMessages),
		Rows:     rows,
		Form:     v.Form(),
	}
}

// Search sets the search term and returns the refreshed view.
func (v *TeacherView) Search(term string) dto.TeacherListView {
	v.list.SetSearchTerm(term)
	return v.State()
}

// SetPage moves to page n, clamped, and returns the refreshed view.
func (v *TeacherView) SetPage(n int) dto.TeacherListView {
	v.list.SetPage(n)
	return v.State()
}

// Form returns the form state together with the department choices.
func (v *TeacherView) Form() dto.TeacherFormView {
	state := v.form.State()
	departments := v.names.Options()
	options := make([]dto.DepartmentOption, 0, len(departments))
	for _, d := range departments {
		options = append(options, dto.DepartmentOption{ID: d.ID, Name: d.DepartmentName})
	}
	return dto.TeacherFormView{
		Mode:              string(state.Mode),
		EditingID:         state.EditingID,
		Draft:             state.Draft,
		DepartmentOptions: options,
	}
}

// SetDraft replaces the form draft.
func (v *TeacherView) SetDraft(draft models.ProfessorRequest) dto.TeacherFormView {
	v.form.SetDraft(draft)
	return v.Form()
}

// StartEdit loads teacher id into the form.
func (v *TeacherView) StartEdit(id int) (dto.TeacherFormView, error) {
	if err := v.form.StartEditByID(id); err != nil {
		return dto.TeacherFormView{}, err
	}
	return v.Form(), nil
}

// CancelEdit resets the form to create mode.
func (v *TeacherView) CancelEdit() dto.TeacherFormView {
	v.form.Cancel()
	return v.Form()
}

// Submit creates or updates the draft.
func (v *TeacherView) Submit(ctx context.Context) (models.Teacher, error) {
	saved, err := v.form.Submit(ctx)
	if err != nil {
		return models.Teacher{}, viewError(err)
	}
	v.logger.Info("teacher saved", zap.Int("teacher_id", saved.ID))
	return saved, nil
}

// Delete removes teacher id once confirmed.
func (v *TeacherView) Delete(ctx context.Context, id int, confirmed bool) error {
	if err := v.list.Delete(ctx, id, confirmed); err != nil {
		return viewError(err)
	}
	v.logger.Info("teacher deleted", zap.Int("teacher_id", id))
	return nil
}

// Dataset returns every teacher matching the current search term.
func (v *TeacherView) Dataset() export.Dataset {
	data := export.Dataset{
		Title:   "Teachers",
		Headers: []string{"ID", "Name", "Email", "Phone", "Department"},
	}
	for t := range v.list.Filtered() {
		data.Rows = append(data.Rows, []string{
			strconv.Itoa(t.ID),
			t.ProfessorName,
			t.Email,
			t.ProfessorPhoneNumber,
			v.names.Resolve(t.DepartmentID),
		})
	}
	return data
}

// Close drops pending loads.
func (v *TeacherView) Close() {
	v.list.Close()
}
