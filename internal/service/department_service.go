package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/faculty-portal/internal/dto"
	"github.com/noah-isme/faculty-portal/internal/models"
	"github.com/noah-isme/faculty-portal/internal/viewmodel"
	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
	"github.com/noah-isme/faculty-portal/pkg/export"
)

type departmentStore interface {
	List(ctx context.Context) ([]models.Department, error)
	Create(ctx context.Context, req models.DepartmentRequest) (models.Department, error)
	Update(ctx context.Context, id int, req models.DepartmentRequest) (models.Department, error)
	Delete(ctx context.Context, id int) error
	Professors(ctx context.Context, id int) ([]models.Teacher, error)
}

// DepartmentMessages are the strings shown by the department view.
var DepartmentMessages = viewmodel.Messages{
	Load:    "Failed to load departments.",
	Save:    "Failed to save department.",
	Delete:  "Failed to delete department.",
	Confirm: "Are you sure you want to delete this department?",
	Empty:   "No departments found. Add one below!",
}

// EmptyRosterMessage is shown for an expanded department without teachers.
const EmptyRosterMessage = "No teachers in this department."

// DepartmentView composes the department list, its form and the roster loader of one workspace.
type DepartmentView struct {
	list   *viewmodel.List[models.Department]
	form   *viewmodel.Form[models.Department, models.DepartmentRequest]
	roster *viewmodel.Roster
	logger *zap.Logger
}

// NewDepartmentView constructs an empty department view. dispatcher runs roster fetches.
func NewDepartmentView(store departmentStore, dispatcher viewmodel.Dispatcher, validate *validator.Validate, logger *zap.Logger) *DepartmentView {
	if logger == nil {
		logger = zap.NewNop()
	}
	list := viewmodel.NewList[models.Department](store, DepartmentMessages, logger)
	return &DepartmentView{
		list:   list,
		form:   viewmodel.NewForm[models.Department, models.DepartmentRequest](list, store, models.DepartmentDraft, validate, logger),
		roster: viewmodel.NewRoster(store, dispatcher, logger),
		logger: logger,
	}
}

// Load refreshes the department collection.
func (v *DepartmentView) Load(ctx context.Context) error {
	return viewError(v.list.Load(ctx))
}

// State builds the current list view.
func (v *DepartmentView) State() dto.DepartmentListView {
	snap := v.list.Snapshot()
	loading := make(map[int]bool)
	for _, id := range v.roster.LoadingIDs() {
		loading[id] = true
	}
	expanded := v.roster.Expanded()

	rows := make([]dto.DepartmentRow, 0, len(snap.Rows))
	for _, d := range snap.Rows {
		rows = append(rows, dto.DepartmentRow{
			ID:                 d.ID,
			DepartmentName:     d.DepartmentName,
			DepartmentBuilding: d.DepartmentBuilding,
			Expanded:           d.ID == expanded,
			TeachersLoading:    loading[d.ID],
		})
	}
	view := dto.DepartmentListView{
		ListMeta: listMeta(snap, DepartmentMessages),
		Rows:     rows,
		Form:     v.Form(),
	}
	if expanded != 0 {
		view.ExpandedID = &expanded
	}
	return view
}

// Search sets the search term and returns the refreshed view.
func (v *DepartmentView) Search(term string) dto.DepartmentListView {
	v.list.SetSearchTerm(term)
	return v.State()
}

// SetPage moves to page n, clamped, and returns the refreshed view.
func (v *DepartmentView) SetPage(n int) dto.DepartmentListView {
	v.list.SetPage(n)
	return v.State()
}

// Form returns the form state.
func (v *DepartmentView) Form() dto.DepartmentFormView {
	state := v.form.State()
	return dto.DepartmentFormView{Mode: string(state.Mode), EditingID: state.EditingID, Draft: state.Draft}
}

// SetDraft replaces the form draft.
func (v *DepartmentView) SetDraft(draft models.DepartmentRequest) dto.DepartmentFormView {
	v.form.SetDraft(draft)
	return v.Form()
}

// StartEdit loads department id into the form.
func (v *DepartmentView) StartEdit(id int) (dto.DepartmentFormView, error) {
	if err := v.form.StartEditByID(id); err != nil {
		return dto.DepartmentFormView{}, err
	}
	return v.Form(), nil
}

// CancelEdit resets the form to create mode.
func (v *DepartmentView) CancelEdit() dto.DepartmentFormView {
	v.form.Cancel()
	return v.Form()
}

// Submit creates or updates the draft.
func (v *DepartmentView) Submit(ctx context.Context) (models.Department, error) {
	saved, err := v.form.Submit(ctx)
	if err != nil {
		return models.Department{}, viewError(err)
	}
	v.logger.Info("department saved", zap.Int("department_id", saved.ID))
	return saved, nil
}

// Delete removes department id once confirmed and forgets its roster.
func (v *DepartmentView) Delete(ctx context.Context, id int, confirmed bool) error {
	if err := v.list.Delete(ctx, id, confirmed); err != nil {
		return viewError(err)
	}
	v.roster.Forget(id)
	v.logger.Info("department deleted", zap.Int("department_id", id))
	return nil
}

// Toggle expands or collapses department id.
func (v *DepartmentView) Toggle(id int) (dto.RosterView, error) {
	d, ok := v.list.Find(id)
	if !ok {
		return dto.RosterView{}, departmentNotFound(id)
	}
	return rosterView(d, v.roster.Toggle(id)), nil
}

// Roster returns the expansion state of department id.
func (v *DepartmentView) Roster(id int) (dto.RosterView, error) {
	d, ok := v.list.Find(id)
	if !ok {
		return dto.RosterView{}, departmentNotFound(id)
	}
	return rosterView(d, v.roster.Entry(id)), nil
}

// Dataset returns every department matching the current search term.
func (v *DepartmentView) Dataset() export.Dataset {
	data := export.Dataset{
		Title:   "Departments",
		Headers: []string{"ID", "Department Name", "Building"},
	}
	for d := range v.list.Filtered() {
		data.Rows = append(data.Rows, []string{strconv.Itoa(d.ID), d.DepartmentName, strconv.Itoa(d.DepartmentBuilding)})
	}
	return data
}

// Names exposes department name lookups for other views of the same workspace.
func (v *DepartmentView) Names() *viewmodel.NameResolver {
	return viewmodel.NewNameResolver(v.list)
}

// Close drops pending loads and fetches.
func (v *DepartmentView) Close() {
	v.list.Close()
	v.roster.Close()
}

func rosterView(d models.Department, entry viewmodel.RosterEntry) dto.RosterView {
	view := dto.RosterView{
		DepartmentID:   d.ID,
		DepartmentName: d.DepartmentName,
		Expanded:       entry.Expanded,
		Loading:        entry.Loading,
		Loaded:         entry.Loaded,
		Teachers:       entry.Teachers,
	}
	if view.Teachers == nil {
		view.Teachers = []models.Teacher{}
	}
	if entry.Loaded && len(entry.Teachers) == 0 {
		view.EmptyMessage = EmptyRosterMessage
	}
	return view
}

func departmentNotFound(id int) error {
	return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("department %d not found", id))
}

func listMeta[T viewmodel.Record](snap viewmodel.ListState[T], messages viewmodel.Messages) dto.ListMeta {
	meta := dto.ListMeta{
		Search:      snap.Search,
		Page:        snap.Page,
		PageCount:   snap.PageCount,
		PageSize:    viewmodel.PageSize,
		Total:       snap.Total,
		HasPrevious: snap.HasPrev,
		HasNext:     snap.HasNext,
		Loading:     snap.Loading,
		Error:       snap.Error,
	}
	if snap.Total == 0 && !snap.Loading && snap.Error == "" {
		meta.EmptyMessage = messages.Empty
	}
	return meta
}

// viewError maps a torn-down view onto the missing-session error.
func viewError(err error) error {
	if errors.Is(err, viewmodel.ErrClosed) {
		return appErrors.Rewrap(appErrors.ErrSessionNotFound, err, "session closed")
	}
	return err
}
