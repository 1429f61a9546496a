// Package observe provides the change-notification primitive the domain
// stores expose to UI consumers.
package observe

import "sync"

// Hub fans out change notifications to subscribers. The zero value is ready
// to use.
type Hub struct {
	mu   sync.Mutex
	next int
	subs map[int]func()
}

// Subscribe registers fn to run after every state change and returns an
// unsubscribe function.
func (h *Hub) Subscribe(fn func()) func() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.subs == nil {
		h.subs = make(map[int]func())
	}
	id := h.next
	h.next++
	h.subs[id] = fn

	return func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

// Notify invokes all current subscribers. Callbacks run outside the hub lock
// so they may subscribe or unsubscribe freely.
func (h *Hub) Notify() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
