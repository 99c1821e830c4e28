package viewmodel

import (
	"context"
	"errors"
	"iter"
	"strings"
	"sync"

	"go.uber.org/zap"

	appErrors "github.com/noah-isme/faculty-portal/pkg/errors"
)

// PageSize is the fixed number of rows per page.
const PageSize = 5

// ErrClosed is returned once a view has been torn down.
var ErrClosed = errors.New("viewmodel: view closed")

// Record is implemented by every entity a list can hold.
type Record interface {
	Key() int
	Label() string
}

// Collection is the read/delete half of a remote store.
type Collection[T Record] interface {
	List(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id int) error
}

// Messages are the flat strings surfaced to the user for a given entity type.
type Messages struct {
	Load    string
	Save    string
	Delete  string
	Confirm string
	Empty   string
}

// ListState is a consistent snapshot of a list view.
type ListState[T Record] struct {
	Rows      []T
	Search    string
	Page      int
	PageCount int
	Total     int
	Loading   bool
	Error     string
	HasPrev   bool
	HasNext   bool
}

// List holds the authoritative in-memory copy of one entity type plus the search term and
// current page. The items slice is never mutated in place, so snapshots stay valid after the
// lock is released.
type List[T Record] struct {
	mu         sync.RWMutex
	store      Collection[T]
	messages   Messages
	logger     *zap.Logger
	items      []T
	term       string
	page       int
	loading    bool
	errMsg     string
	generation uint64
	closed     bool
}

// NewList constructs an empty list view on page 1.
func NewList[T Record](store Collection[T], messages Messages, logger *zap.Logger) *List[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &List[T]{store: store, messages: messages, logger: logger, page: 1}
}

// Load fetches the whole collection and replaces the in-memory copy. A response superseded by a
// newer Load, or arriving after Close, is discarded without touching state.
func (l *List[T]) Load(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.generation++
	gen := l.generation
	l.loading = true
	l.errMsg = ""
	l.mu.Unlock()

	items, err := l.store.List(ctx)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed || gen != l.generation {
		l.logger.Debug("discarding superseded load", zap.Uint64("generation", gen))
		return nil
	}
	l.loading = false
	if err != nil {
		l.errMsg = l.messages.Load
		return appErrors.Rewrap(appErrors.ErrUpstream, err, l.messages.Load)
	}
	l.items = append([]T(nil), items...)
	l.page = 1
	return nil
}

// SetSearchTerm stores term verbatim and returns to the first page.
func (l *List[T]) SetSearchTerm(term string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.term = term
	l.page = 1
}

// SetPage moves to page n clamped into [1, max(1, PageCount())] and returns the page applied.
func (l *List[T]) SetPage(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.page = n
	l.clampPage()
	return l.page
}

// Filtered returns a lazy, restartable sequence of the records matching the current term.
func (l *List[T]) Filtered() iter.Seq[T] {
	l.mu.RLock()
	items, term := l.items, l.term
	l.mu.RUnlock()
	return filter(items, term)
}

// VisibleRows returns the current page of the filtered sequence.
func (l *List[T]) VisibleRows() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return pageOf(filter(l.items, l.term), l.page)
}

// PageCount returns ceil(filtered/PageSize); zero when nothing matches.
func (l *List[T]) PageCount() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return pageCount(count(filter(l.items, l.term)))
}

// Page returns the current page number.
func (l *List[T]) Page() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.page
}

// Items returns a copy of the full, unfiltered collection.
func (l *List[T]) Items() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return append([]T(nil), l.items...)
}

// Find looks a record up by id.
func (l *List[T]) Find(id int) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, item := range l.items {
		if item.Key() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// Snapshot captures rows, paging, and status flags under a single lock.
func (l *List[T]) Snapshot() ListState[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	matches := filter(l.items, l.term)
	total := count(matches)
	pages := pageCount(total)
	rows := pageOf(matches, l.page)
	if rows == nil {
		rows = []T{}
	}
	return ListState[T]{
		Rows:      rows,
		Search:    l.term,
		Page:      l.page,
		PageCount: pages,
		Total:     total,
		Loading:   l.loading,
		Error:     l.errMsg,
		HasPrev:   l.page > 1,
		HasNext:   l.page < pages,
	}
}

// Delete removes record id upstream and then locally. Without confirmation nothing is sent.
// Removing an id that is already gone leaves the collection unchanged.
func (l *List[T]) Delete(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return appErrors.Clone(appErrors.ErrConfirmationRequired, l.messages.Confirm)
	}

	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return ErrClosed
	}
	l.errMsg = ""
	l.mu.Unlock()

	err := l.store.Delete(ctx, id)

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	if err != nil {
		l.errMsg = l.messages.Delete
		return appErrors.Rewrap(appErrors.ErrUpstream, err, l.messages.Delete)
	}
	l.removeLocked(id)
	return nil
}

// Close tears the view down; in-flight results are dropped when they arrive.
func (l *List[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closed = true
	l.generation++
	l.loading = false
}

func (l *List[T]) clearError() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	l.errMsg = ""
	return nil
}

func (l *List[T]) fail(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.closed {
		l.errMsg = msg
	}
}

func (l *List[T]) appendRecord(rec T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	next := make([]T, 0, len(l.items)+1)
	next = append(next, l.items...)
	l.items = append(next, rec)
	l.clampPage()
	return nil
}

func (l *List[T]) replaceRecord(id int, rec T) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return ErrClosed
	}
	next := make([]T, len(l.items))
	for i, item := range l.items {
		if item.Key() == id {
			next[i] = rec
			continue
		}
		next[i] = item
	}
	l.items = next
	l.clampPage()
	return nil
}

func (l *List[T]) removeLocked(id int) {
	next := make([]T, 0, len(l.items))
	for _, item := range l.items {
		if item.Key() != id {
			next = append(next, item)
		}
	}
	l.items = next
	l.clampPage()
}

// clampPage requires l.mu held for writing.
func (l *List[T]) clampPage() {
	upper := pageCount(count(filter(l.items, l.term)))
	if upper < 1 {
		upper = 1
	}
	if l.page > upper {
		l.page = upper
	}
	if l.page < 1 {
		l.page = 1
	}
}

func filter[T Record](items []T, term string) iter.Seq[T] {
	needle := strings.ToLower(term)
	return func(yield func(T) bool) {
		for _, item := range items {
			if !strings.Contains(strings.ToLower(item.Label()), needle) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

func count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func pageCount(n int) int {
	return (n + PageSize - 1) / PageSize
}

func pageOf[T any](seq iter.Seq[T], page int) []T {
	if page < 1 {
		return nil
	}
	start := (page - 1) * PageSize
	var rows []T
	i := 0
	for item := range seq {
		if i >= start+PageSize {
			break
		}
		if i >= start {
			rows = append(rows, item)
		}
		i++
	}
	return rows
}
