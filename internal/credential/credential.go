// Package credential owns the durable auth state: the bearer token, tenant
// key, and cached profile that must survive app restarts.
package credential

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/tractionhq/mobilecore/internal/domain/user"
	"github.com/tractionhq/mobilecore/internal/keyval"
)

// StorageKey is the fixed key the credential blob is persisted under.
const StorageKey = "auth-storage"

// Credential is the auth state shared by the gateway and the auth store.
type Credential struct {
	Token           string     `json:"token"`
	Tenant          string     `json:"tenant"`
	User            *user.User `json:"user"`
	IsAuthenticated bool       `json:"isAuthenticated"`
}

// Valid reports whether the credential can authenticate requests: both token
// and tenant must be present.
func (c Credential) Valid() bool {
	return c.Token != "" && c.Tenant != ""
}

// persistedBlob is the on-disk envelope. The state wrapper matches what the
// mobile client historically wrote, so existing installs rehydrate cleanly.
type persistedBlob struct {
	State   Credential `json:"state"`
	Version int        `json:"version"`
}

// Store persists credentials in durable key-value storage.
type Store struct {
	storage keyval.Storage
	logger  *slog.Logger
}

// NewStore creates a credential store over the given storage.
func NewStore(storage keyval.Storage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{storage: storage, logger: logger}
}

// Save writes the credential blob. IsAuthenticated is normalized from token
// and tenant presence before writing.
func (s *Store) Save(cred Credential) error {
	cred.IsAuthenticated = cred.Valid()

	data, err := json.Marshal(persistedBlob{State: cred})
	if err != nil {
		return fmt.Errorf("encoding credential: %w", err)
	}
	if err := s.storage.SetItem(StorageKey, string(data)); err != nil {
		return fmt.Errorf("persisting credential: %w", err)
	}
	return nil
}

// Load reads the persisted credential. A missing or corrupt blob yields an
// empty credential and no error; the user just goes through login again.
func (s *Store) Load() Credential {
	raw, ok, err := s.storage.GetItem(StorageKey)
	if err != nil {
		s.logger.Debug("credential read failed", "error", err)
		return Credential{}
	}
	if !ok {
		return Credential{}
	}

	var blob persistedBlob
	if err := json.Unmarshal([]byte(raw), &blob); err != nil {
		s.logger.Debug("discarding corrupt credential blob", "error", err)
		return Credential{}
	}

	blob.State.IsAuthenticated = blob.State.Valid()
	return blob.State
}

// Clear removes the persisted credential.
func (s *Store) Clear() error {
	if err := s.storage.RemoveItem(StorageKey); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}
	return nil
}
