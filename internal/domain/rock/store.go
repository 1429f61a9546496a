package rock

import (
	"context"
	"log/slog"
	"sync"

	"github.com/tractionhq/mobilecore/internal/domain/observe"
)

// State is a point-in-time snapshot of the rock collection and its derived
// statistics.
type State struct {
	Rocks      []Rock
	IsLoading  bool
	Error      string
	Statistics *Statistics
}

// Store holds the in-memory rock collection. Every successful fetch replaces
// the collection and synchronously recomputes Statistics; the aggregate is
// never cached across collection changes.
type Store struct {
	client Client
	logger *slog.Logger
	subs   observe.Hub

	mu         sync.Mutex
	rocks      []Rock
	isLoading  bool
	errMsg     string
	statistics *Statistics
	lastParams ListParams
}

// NewStore creates a rock store.
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

	rocks := make([]Rock, len(s.rocks))
	copy(rocks, s.rocks)

	var stats *Statistics
	if s.statistics != nil {
		copied := *s.statistics
		stats = &copied
	}

	return State{
		Rocks:      rocks,
		IsLoading:  s.isLoading,
		Error:      s.errMsg,
		Statistics: stats,
	}
}

// Fetch replaces the collection with the rocks matching params and recomputes
// statistics.
func (s *Store) Fetch(ctx context.Context, params ListParams) {
	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.lastParams = params
	s.mu.Unlock()
	s.subs.Notify()

	rocks, err := s.client.ListRocks(ctx, params)

	s.mu.Lock()
	if err != nil {
		s.errMsg = err.Error()
		s.isLoading = false
	} else {
		stats := CalculateStatistics(rocks)
		s.rocks = rocks
		s.statistics = &stats
		s.isLoading = false
	}
	s.mu.Unlock()
	s.subs.Notify()
}

// CheckIn validates a milestone check-in locally and re-fetches the
// collection. The backend write is not wired yet; the upstream contract for
// milestone check-ins is still undecided, so none is invented here and
// callers must not assume the value was persisted.
func (s *Store) CheckIn(ctx context.Context, milestoneID string, percent float64) error {
	if percent < 0 || percent > 100 {
		return ErrInvalidPercent
	}

	s.logger.Info("milestone check-in submitted", "milestone", milestoneID, "percent", percent)

	s.mu.Lock()
	params := s.lastParams
	s.mu.Unlock()

	s.Fetch(ctx, params)
	return nil
}

// Clear empties the collection and its statistics.
func (s *Store) Clear() {
	s.mu.Lock()
	s.rocks = nil
	s.statistics = nil
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
