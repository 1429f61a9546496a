package credential

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tractionhq/mobilecore/internal/domain/user"
	"github.com/tractionhq/mobilecore/internal/keyval"
)

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	store := NewStore(keyval.NewMemoryStorage(), nil)

	cred := Credential{
		Token:  "tok-123",
		Tenant: "acme",
		User:   &user.User{ID: "u1", Email: "ann@acme.test", FullName: "Ann"},
	}
	require.NoError(t, store.Save(cred))

	loaded := store.Load()
	require.Equal(t, "tok-123", loaded.Token)
	require.Equal(t, "acme", loaded.Tenant)
	require.True(t, loaded.IsAuthenticated)
	require.NotNil(t, loaded.User)
	require.Equal(t, "ann@acme.test", loaded.User.Email)
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(keyval.NewMemoryStorage(), nil)

	loaded := store.Load()
	require.Empty(t, loaded.Token)
	require.False(t, loaded.IsAuthenticated)
}

func TestStore_LoadCorruptBlobIsSwallowed(t *testing.T) {
	storage := keyval.NewMemoryStorage()
	require.NoError(t, storage.SetItem(StorageKey, "{not json"))

	store := NewStore(storage, nil)
	loaded := store.Load()
	require.Empty(t, loaded.Token)
	require.False(t, loaded.IsAuthenticated)
}

func TestStore_IsAuthenticatedNormalized(t *testing.T) {
	storage := keyval.NewMemoryStorage()
	store := NewStore(storage, nil)

	// Token without tenant must not count as authenticated, whatever the
	// blob claims.
	require.NoError(t, storage.SetItem(StorageKey,
		`{"state":{"token":"t","tenant":"","isAuthenticated":true}}`))
	require.False(t, store.Load().IsAuthenticated)

	require.NoError(t, store.Save(Credential{Token: "t", Tenant: "x"}))
	require.True(t, store.Load().IsAuthenticated)
}

func TestStore_Clear(t *testing.T) {
	storage := keyval.NewMemoryStorage()
	store := NewStore(storage, nil)

	require.NoError(t, store.Save(Credential{Token: "t", Tenant: "x"}))
	require.NoError(t, store.Clear())

	_, ok, err := storage.GetItem(StorageKey)
	require.NoError(t, err)
	require.False(t, ok)
}
