package viewmodel

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/noah-isme/faculty-portal/internal/models"
)

// UnknownDepartment is shown for a teacher whose department cannot be resolved.
const UnknownDepartment = "Unknown"

// RosterFetcher loads the teachers of one department.
type RosterFetcher interface {
	Professors(ctx context.Context, departmentID int) ([]models.Teacher, error)
}

// Dispatcher runs fn asynchronously.
type Dispatcher interface {
	Dispatch(key string, fn func(ctx context.Context)) error
}

// goDispatcher runs each fetch on its own goroutine.
type goDispatcher struct{}

func (goDispatcher) Dispatch(_ string, fn func(ctx context.Context)) error {
	go fn(context.Background())
	return nil
}

// RosterEntry describes the expansion state of one department.
type RosterEntry struct {
	DepartmentID int
	Expanded     bool
	Loading      bool
	Loaded       bool
	Teachers     []models.Teacher
}

// Roster lazily loads department rosters. Each department is fetched at most once per session;
// loading state is tracked per department so overlapping expansions stay independent.
type Roster struct {
	mu         sync.Mutex
	fetcher    RosterFetcher
	dispatcher Dispatcher
	logger     *zap.Logger
	cache      map[int][]models.Teacher
	loading    map[int]uint64
	generation uint64
	expanded   int
	closed     bool
}

// NewRoster constructs a roster loader. A nil dispatcher runs fetches on plain goroutines.
func NewRoster(fetcher RosterFetcher, dispatcher Dispatcher, logger *zap.Logger) *Roster {
	if dispatcher == nil {
		dispatcher = goDispatcher{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Roster{
		fetcher:    fetcher,
		dispatcher: dispatcher,
		logger:     logger,
		cache:      make(map[int][]models.Teacher),
		loading:    make(map[int]uint64),
	}
}

// Toggle collapses departmentID when it is the expanded one, otherwise expands it. Expanding an
// uncached department that is not already loading dispatches one fetch.
func (r *Roster) Toggle(departmentID int) RosterEntry {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return RosterEntry{DepartmentID: departmentID}
	}
	if r.expanded == departmentID {
		r.expanded = 0
		entry := r.entryLocked(departmentID)
		r.mu.Unlock()
		return entry
	}
	r.expanded = departmentID
	_, cached := r.cache[departmentID]
	_, inFlight := r.loading[departmentID]
	var gen uint64
	if !cached && !inFlight {
		r.generation++
		gen = r.generation
		r.loading[departmentID] = gen
	}
	r.mu.Unlock()

	if gen != 0 {
		r.dispatch(departmentID, gen)
	}
	return r.Entry(departmentID)
}

// Entry returns the state of departmentID.
func (r *Roster) Entry(departmentID int) RosterEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.entryLocked(departmentID)
}

// Expanded returns the id of the expanded department, or 0.
func (r *Roster) Expanded() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.expanded
}

// LoadingIDs returns the departments with a fetch in flight, in ascending order.
func (r *Roster) LoadingIDs() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]int, 0, len(r.loading))
	for id := range r.loading {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Forget drops everything known about departmentID; a fetch still in flight is discarded.
func (r *Roster) Forget(departmentID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.cache, departmentID)
	delete(r.loading, departmentID)
	if r.expanded == departmentID {
		r.expanded = 0
	}
}

// Close discards every pending fetch.
func (r *Roster) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	r.loading = make(map[int]uint64)
	r.expanded = 0
}

func (r *Roster) dispatch(departmentID int, gen uint64) {
	err := r.dispatcher.Dispatch("roster", func(ctx context.Context) {
		teachers, err := r.fetcher.Professors(ctx, departmentID)
		r.commit(departmentID, gen, teachers, err)
	})
	if err == nil {
		return
	}
	r.logger.Warn("roster fetch not dispatched", zap.Int("department_id", departmentID), zap.Error(err))
	r.mu.Lock()
	if r.loading[departmentID] == gen {
		delete(r.loading, departmentID)
	}
	r.mu.Unlock()
}

func (r *Roster) commit(departmentID int, gen uint64, teachers []models.Teacher, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed || r.loading[departmentID] != gen {
		return
	}
	delete(r.loading, departmentID)
	if err != nil {
		r.logger.Warn("roster fetch failed", zap.Int("department_id", departmentID), zap.Error(err))
		return
	}
	if teachers == nil {
		teachers = []models.Teacher{}
	}
	r.cache[departmentID] = teachers
}

func (r *Roster) entryLocked(departmentID int) RosterEntry {
	teachers, loaded := r.cache[departmentID]
	_, loading := r.loading[departmentID]
	entry := RosterEntry{
		DepartmentID: departmentID,
		Expanded:     r.expanded == departmentID && departmentID != 0,
		Loading:      loading,
		Loaded:       loaded,
		Teachers:     append([]models.Teacher{}, teachers...),
	}
	return entry
}

// NameResolver derives department names from the session's single department list.
type NameResolver struct {
	departments *List[models.Department]
}

// NewNameResolver reads names from departments.
func NewNameResolver(departments *List[models.Department]) *NameResolver {
	return &NameResolver{departments: departments}
}

// Resolve returns the department name for id, or UnknownDepartment.
func (r *NameResolver) Resolve(id int) string {
	if r == nil || r.departments == nil {
		return UnknownDepartment
	}
	if d, ok := r.departments.Find(id); ok {
		return d.DepartmentName
	}
	return UnknownDepartment
}

// Options returns every known department, for select inputs.
func (r *NameResolver) Options() []models.Department {
	if r == nil || r.departments == nil {
		return []models.Department{}
	}
	items := r.departments.Items()
	if items == nil {
		items = []models.Department{}
	}
	return items
}
