package dashboard

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tractionhq/mobilecore/internal/domain/observe"
)

// State is a point-in-time snapshot of the dashboard collection.
type State struct {
	Dashboards []Dashboard
	IsLoading  bool
	Error      string
}

// Store holds the in-memory dashboard collection. No pagination, no derived
// state; a fetch simply replaces the collection.
type Store struct {
	client Client
	logger *slog.Logger
	subs   observe.Hub

	mu         sync.Mutex
	dashboards []Dashboard
	isLoading  bool
	errMsg     string
}

// NewStore creates a dashboard store.
func NewStore(client Client, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{client: client, logger: logger}
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

	dashboards := make([]Dashboard, len(s.dashboards))
	copy(dashboards, s.dashboards)

	return State{
		Dashboards: dashboards,
		IsLoading:  s.isLoading,
		Error:      s.errMsg,
	}
}

// Fetch replaces the collection with the dashboards visible to the user.
func (s *Store) Fetch(ctx context.Context) {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.subs.Notify()

	dashboards, err := s.client.ListDashboards(ctx)

	s.mu.Lock()
	if err != nil {
		s.errMsg = err.Error()
		s.isLoading = false
	} else {
		s.dashboards = dashboards
		s.isLoading = false
	}
	s.mu.Unlock()
	s.subs.Notify()
}

// SetDashboards replaces the collection directly, bypassing the network.
func (s *Store) SetDashboards(dashboards []Dashboard) {
	s.mu.Lock()
	s.dashboards = dashboards
	s.mu.Unlock()
	s.subs.Notify()
}

// Clear empties the collection and the error state.
func (s *Store) Clear() {
	s.mu.Lock()
	s.dashboards = nil
	s.errMsg = ""
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
