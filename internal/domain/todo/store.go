package todo

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tractionhq/mobilecore/internal/domain/observe"
)

const defaultItemPerPage = 50

// State is a point-in-time snapshot of the todo collection and its
// pagination cursor.
type State struct {
	Todos       []Todo
	IsLoading   bool
	Error       string
	CurrentPage int
	ItemPerPage int
	Total       int
}

// Store holds the in-memory todo collection and orchestrates fetches,
// pagination, and the optimistic status toggle.
//
// Overlapping calls to the same action are not serialized: whichever response
// lands last wins. The UI triggers these from single gestures, so the race is
// accepted rather than guarded against.
type Store struct {
	client Client
	logger *slog.Logger
	subs   observe.Hub

	mu          sync.Mutex
	todos       []Todo
	isLoading   bool
	errMsg      string
	currentPage int
	itemPerPage int
	total       int
}

// NewStore creates a todo store.
func NewStore(client Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client:      client,
		logger:      logger,
		currentPage: 1,
		itemPerPage: defaultItemPerPage,
	}
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	return s.subs.Subscribe(fn)
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	todos := make([]Todo, len(s.todos))
	copy(todos, s.todos)

	return State{
		Todos:       todos,
		IsLoading:   s.isLoading,
		Error:       s.errMsg,
		CurrentPage: s.currentPage,
		ItemPerPage: s.itemPerPage,
		Total:       s.total,
	}
}

// Fetch loads the first page, replacing the collection and the cursor.
// The page and per-page values in params are overridden.
func (s *Store) Fetch(ctx context.Context, params ListParams) {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	params.Page = 1
	params.ItemPerPage = s.itemPerPage
	s.mu.Unlock()
	s.subs.Notify()

	list, err := s.client.ListTodos(ctx, params)

	s.mu.Lock()
	if err != nil {
		s.errMsg = err.Error()
		s.isLoading = false
	} else {
		s.todos = list.Items
		s.total = list.Total
		s.currentPage = list.Page
		s.itemPerPage = list.ItemPerPage
		s.isLoading = false
	}
	s.mu.Unlock()
	s.subs.Notify()
}

// LoadMore appends the next page. It is a no-op while a fetch is in flight or
// once the collection has reached the reported total. Appended items keep the
// existing prefix order; duplicate ids across pages are not filtered.
func (s *Store) LoadMore(ctx context.Context) {
	s.mu.Lock()
	if s.isLoading || len(s.todos) >= s.total {
		s.mu.Unlock()
		return
	}
	s.isLoading = true
	page := s.currentPage + 1
	itemPerPage := s.itemPerPage
	s.mu.Unlock()
	s.subs.Notify()

	list, err := s.client.ListTodos(ctx, ListParams{Page: page, ItemPerPage: itemPerPage})

	s.mu.Lock()
	if err != nil {
		s.errMsg = err.Error()
		s.isLoading = false
	} else {
		s.todos = append(s.todos, list.Items...)
		s.currentPage = list.Page
		s.isLoading = false
	}
	s.mu.Unlock()
	s.subs.Notify()
}

// ToggleStatus flips a todo's status optimistically: the in-memory record is
// updated before the backend write, and reverted by id if the write fails.
// Other records are never touched; an unknown id is a no-op.
func (s *Store) ToggleStatus(ctx context.Context, id string) {
	s.mu.Lock()
	idx := s.indexOf(id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	snapshot := s.todos[idx]
	s.todos[idx].Status = snapshot.Status.Toggle()
	s.mu.Unlock()
	s.subs.Notify()

	_, err := s.client.ToggleStatus(ctx, id, snapshot.Status)
	if err == nil {
		return
	}

	s.mu.Lock()
	// Look the record up again: the collection may have shifted while the
	// request was in flight.
	if idx := s.indexOf(id); idx >= 0 {
		s.todos[idx] = snapshot
	}
	s.errMsg = err.Error()
	s.mu.Unlock()
	s.subs.Notify()
}

// Clear empties the collection and resets the pagination cursor.
func (s *Store) Clear() {
	s.mu.Lock()
	s.todos = nil
	s.currentPage = 1
	s.total = 0
	s.mu.Unlock()
	s.subs.Notify()
}

// ClearError resets the error state.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
	s.subs.Notify()
}

// indexOf returns the position of the todo with the given id, -1 if absent.
// Callers must hold s.mu.
func (s *Store) indexOf(id string) int {
	for i := range s.todos {
		if s.todos[i].ID == id {
			return i
		}
	}
	return -1
}
