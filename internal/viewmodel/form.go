package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

// Mode is the state of a form.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// Mutator is the write half of a remote store.
type Mutator[T Record, D any] interface {
	Create(ctx context.Context, draft D) (T, error)
	Update(ctx context.Context, id int, draft D) (T, error)
}

// FormState is a snapshot of a form.
type FormState[D any] struct {
	Mode      Mode
	Draft     D
	EditingID *int
}

// Form holds a draft record and reconciles its list with the result of a submit.
type Form[T Record, D any] struct {
	mu        sync.Mutex
	list      *List[T]
	store     Mutator[T, D]
	draftOf   func(T) D
	validate  *validator.Validate
	logger    *zap.Logger
	mode      Mode
	draft     D
	editingID int
	// session changes on every StartEdit/Cancel/reset so a late submit result cannot
	// reset a form the user has since moved on from.
	session uint64
}

// NewForm constructs a form in create mode. draftOf copies the mutable fields of a record.
func NewForm[T Record, D any](list *List[T], store Mutator[T, D], draftOf func(T) D, validate *validator.Validate, logger *zap.Logger) *Form[T, D] {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Form[T, D]{
		list:     list,
		store:    store,
		draftOf:  draftOf,
		validate: validate,
		logger:   logger,
		mode:     ModeCreate,
	}
}

// StartEdit switches to edit mode with a draft copied from rec.
func (f *Form[T, D]) StartEdit(rec T) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mode = ModeEdit
	f.editingID = rec.Key()
	f.draft = f.draftOf(rec)
	f.session++
}

// StartEditByID looks id up in the list and starts editing it.
func (f *Form[T, D]) StartEditByID(id int) error {
	rec, ok := f.list.Find(id)
	if !ok {
		return appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("record %d not found", id))
	}
	f.StartEdit(rec)
	return nil
}

// SetDraft replaces the draft without changing mode.
func (f *Form[T, D]) SetDraft(draft D) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = draft
}

// Cancel returns to create mode with a blank draft.
func (f *Form[T, D]) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resetLocked()
}

// State returns the current form snapshot.
func (f *Form[T, D]) State() FormState[D] {
	f.mu.Lock()
	defer f.mu.Unlock()
	state := FormState[D]{Mode: f.mode, Draft: f.draft}
	if f.mode == ModeEdit {
		id := f.editingID
		state.EditingID = &id
	}
	return state
}

// Submit creates or updates the draft upstream and reconciles the list: append on create,
// replace by the remembered id on update. On failure the list is untouched and the draft kept.
func (f *Form[T, D]) Submit(ctx context.Context) (T, error) {
	var zero T

	f.mu.Lock()
	mode, draft, id, session := f.mode, f.draft, f.editingID, f.session
	f.mu.Unlock()

	if err := f.validate.Struct(draft); err != nil {
		return zero, appErrors.Rewrap(appErrors.ErrValidation, err, "Please fill in all required fields.")
	}
	if err := f.list.clearError(); err != nil {
		return zero, err
	}

	var (
		saved T
		err   error
	)
	if mode == ModeEdit {
		saved, err = f.store.Update(ctx, id, draft)
	} else {
		saved, err = f.store.Create(ctx, draft)
	}
	if err != nil {
		f.list.fail(f.list.messages.Save)
		f.logger.Warn("submit failed", zap.String("mode", string(mode)), zap.Int("id", id), zap.Error(err))
		return zero, appErrors.Rewrap(appErrors.ErrUpstream, err, f.list.messages.Save)
	}

	if mode == ModeEdit {
		err = f.list.replaceRecord(id, saved)
	} else {
		err = f.list.appendRecord(saved)
	}
	if err != nil {
		return zero, err
	}

	f.mu.Lock()
	if f.session == session {
		f.resetLocked()
	}
	f.mu.Unlock()
	return saved, nil
}

func (f *Form[T, D]) resetLocked() {
	var blank D
	f.mode = ModeCreate
	f.draft = blank
	f.editingID = 0
	f.session++
}
