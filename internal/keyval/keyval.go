// Package keyval provides durable key-value storage for client state that
// must survive app restarts, such as the persisted auth credential blob.
package keyval

// Storage is a minimal string key-value store. Implementations must be safe
// for concurrent use.
type Storage interface {
	// SetItem stores value under name, replacing any previous value.
	SetItem(name, value string) error
	// GetItem returns the value stored under name. The second return value
	// reports whether the key was present.
	GetItem(name string) (string, bool, error)
	// RemoveItem deletes the value stored under name. Removing a missing
	// key is not an error.
	RemoveItem(name string) error
}
