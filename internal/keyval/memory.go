package keyval

import "sync"

// MemoryStorage is an in-memory Storage. State is lost on process exit; it is
// used in tests and by callers that opt out of persistence.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemoryStorage creates an empty in-memory store.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

func (s *MemoryStorage) SetItem(name, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[name] = value
	return nil
}

func (s *MemoryStorage) GetItem(name string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.items[name]
	return value, ok, nil
}

func (s *MemoryStorage) RemoveItem(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, name)
	return nil
}
