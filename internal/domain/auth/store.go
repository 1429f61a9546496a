// Package auth implements the session lifecycle: login, logout, profile
// fetch, and credential persistence/rehydration across app restarts.
package auth

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/tractionhq/mobilecore/internal/credential"
	"github.com/tractionhq/mobilecore/internal/domain/observe"
	"github.com/tractionhq/mobilecore/internal/domain/user"
)

// State is a point-in-time snapshot of the auth store.
type State struct {
	Token           string
	Tenant          string
	User            *user.User
	IsAuthenticated bool
	IsLoading       bool
	Error           string
}

// Store drives the Anonymous -> Authenticating -> Authenticated lifecycle.
// Authentication is determined solely by token possession: a failed profile
// fetch after login never reverts it.
type Store struct {
	client  Client
	gateway Gateway
	creds   CredentialStore
	logger  *slog.Logger
	subs    observe.Hub

	mu              sync.Mutex
	token           string
	tenant          string
	user            *user.User
	isAuthenticated bool
	isLoading       bool
	errMsg          string
}

// NewStore creates an auth store. It does not touch storage; call Rehydrate
// during startup to restore a persisted session.
func NewStore(client Client, gateway Gateway, creds CredentialStore, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		client:  client,
		gateway: gateway,
		creds:   creds,
		logger:  logger,
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
	return State{
		Token:           s.token,
		Tenant:          s.tenant,
		User:            s.user,
		IsAuthenticated: s.isAuthenticated,
		IsLoading:       s.isLoading,
		Error:           s.errMsg,
	}
}

// Login exchanges credentials for a token. The returned bool reports backend
// success; backend failures surface through the store's error state. The only
// error returned directly is local validation (empty fields), which touches
// neither the network nor store state.
//
// On success the token and tenant are pushed into the gateway, persisted, and
// a profile fetch is dispatched asynchronously.
func (s *Store) Login(ctx context.Context, email, password, tenant string) (bool, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" || strings.TrimSpace(tenant) == "" {
		return false, ErrMissingCredentials
	}

	s.mu.Lock()
	s.isLoading = true
	s.errMsg = ""
	s.mu.Unlock()
	s.subs.Notify()

	token, err := s.client.Login(ctx, email, password, tenant)
	if err != nil {
		s.mu.Lock()
		s.isLoading = false
		s.errMsg = err.Error()
		s.mu.Unlock()
		s.subs.Notify()
		return false, nil
	}

	cred := credential.Credential{Token: token, Tenant: tenant, IsAuthenticated: true}

	s.mu.Lock()
	s.token = token
	s.tenant = tenant
	s.isAuthenticated = true
	s.isLoading = false
	s.mu.Unlock()

	s.gateway.ApplyCredential(cred)
	if err := s.creds.Save(cred); err != nil {
		s.logger.Warn("could not persist credential", "error", err)
	}
	s.subs.Notify()

	// Profile failure must not revert authentication, so the fetch runs
	// detached from both the caller's lifetime and its cancellation.
	go func() {
		if err := s.GetProfile(context.WithoutCancel(ctx)); err != nil {
			s.logger.Debug("post-login profile fetch failed", "error", err)
		}
	}()

	return true, nil
}

// Logout clears the gateway headers, all in-memory credential state, and the
// persisted blob. It always succeeds and never touches the network.
func (s *Store) Logout() {
	s.gateway.ClearAuth()

	s.mu.Lock()
	s.token = ""
	s.tenant = ""
	s.user = nil
	s.isAuthenticated = false
	s.errMsg = ""
	s.mu.Unlock()

	if err := s.creds.Clear(); err != nil {
		s.logger.Warn("could not clear persisted credential", "error", err)
	}
	s.subs.Notify()
}

// GetProfile fetches the current user and caches it in state and in the
// persisted credential. Without a token it is a no-op.
func (s *Store) GetProfile(ctx context.Context) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	if token == "" {
		return nil
	}

	u, err := s.client.GetProfile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	// The session may have been logged out while the request was in flight;
	// do not resurrect a cleared credential.
	if s.token == "" {
		s.mu.Unlock()
		return nil
	}
	s.user = u
	cred := credential.Credential{
		Token:           s.token,
		Tenant:          s.tenant,
		User:            u,
		IsAuthenticated: s.isAuthenticated,
	}
	s.mu.Unlock()

	if err := s.creds.Save(cred); err != nil {
		s.logger.Warn("could not persist credential", "error", err)
	}
	s.subs.Notify()
	return nil
}

// Rehydrate restores persisted auth state and pushes a valid credential back
// into the gateway. Run it during startup, before other stores issue
// authenticated requests. Corrupt or missing blobs leave the state empty.
func (s *Store) Rehydrate() {
	cred := s.creds.Load()

	s.mu.Lock()
	s.token = cred.Token
	s.tenant = cred.Tenant
	s.user = cred.User
	s.isAuthenticated = cred.IsAuthenticated
	s.mu.Unlock()

	s.gateway.ApplyCredential(cred)
	s.subs.Notify()
}

// ClearError resets the error state.
func (s *Store) ClearError() {
	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()
	s.subs.Notify()
}
