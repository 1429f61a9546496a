package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tractionhq/mobilecore/internal/credential"
	"github.com/tractionhq/mobilecore/internal/keyval"
)

func TestClient_AuthHeadersAttached(t *testing.T) {
	var gotAuth, gotTenant string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTenant = r.Header.Get("tenant-id")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	c.SetAuth("tok", "acme")

	resp, err := c.Get(context.Background(), "/auth/users/me", nil)
	require.NoError(t, err)
	require.True(t, resp.OK)
	require.Equal(t, "Bearer tok", gotAuth)
	require.Equal(t, "acme", gotTenant)
}

func TestClient_ClearAuthRemovesHeaders(t *testing.T) {
	var gotAuth, gotTenant string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotTenant = r.Header.Get("tenant-id")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	c.SetAuth("tok", "acme")
	c.ClearAuth()

	_, err := c.Get(context.Background(), "/auth/dashboards", nil)
	require.NoError(t, err)
	require.Empty(t, gotAuth)
	require.Empty(t, gotTenant)
}

func TestClient_SetAuthIdempotent(t *testing.T) {
	c := New("http://example.invalid", nil, nil)

	c.SetAuth("tok", "acme")
	c.SetAuth("tok", "acme")

	require.Equal(t, "tok", c.Token())
	require.Equal(t, "acme", c.Tenant())
}

func TestClient_BootRehydrationFromStorage(t *testing.T) {
	storage := keyval.NewMemoryStorage()
	credStore := credential.NewStore(storage, nil)
	require.NoError(t, credStore.Save(credential.Credential{Token: "t", Tenant: "x"}))

	// Headers must be correct before any store-level rehydration runs.
	c := New("http://example.invalid", storage, nil)
	require.Equal(t, "t", c.Token())
	require.Equal(t, "x", c.Tenant())
}

func TestClient_BootIgnoresPartialCredential(t *testing.T) {
	storage := keyval.NewMemoryStorage()
	require.NoError(t, storage.SetItem(credential.StorageKey,
		`{"state":{"token":"t","tenant":""}}`))

	c := New("http://example.invalid", storage, nil)
	require.Empty(t, c.Token())
	require.Empty(t, c.Tenant())
}

func TestClient_InstallationIDStable(t *testing.T) {
	storage := keyval.NewMemoryStorage()

	first := New("http://example.invalid", storage, nil)
	second := New("http://example.invalid", storage, nil)

	require.NotEmpty(t, first.installationID)
	require.Equal(t, first.installationID, second.installationID)
}

func TestClient_HTTPErrorIsNotTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid token"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)
	resp, err := c.Get(context.Background(), "/eos-core/todos", nil)
	require.NoError(t, err)
	require.False(t, resp.OK)
	require.Equal(t, http.StatusUnauthorized, resp.Status)
	require.Equal(t, "invalid token", resp.ErrorMessage("fallback"))
}

func TestClient_TransportErrorReturnsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused

	c := New(srv.URL, nil, nil)
	_, err := c.Get(context.Background(), "/eos-core/todos", nil)
	require.Error(t, err)
}

func TestClient_QueryParamsAndPerRequestHeader(t *testing.T) {
	var gotQuery url.Values
	var gotTenant string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotTenant = r.Header.Get("tenant-id")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil, nil)

	params := url.Values{}
	params.Set("page", "2")
	_, err := c.Get(context.Background(), "/eos-core/todos", params, WithHeader("tenant-id", "override"))
	require.NoError(t, err)
	require.Equal(t, "2", gotQuery.Get("page"))
	require.Equal(t, "override", gotTenant)
}

func TestResponse_ErrorMessageFallback(t *testing.T) {
	resp := &Response{Body: []byte(`{"error":"nope"}`)}
	require.Equal(t, "Failed to fetch todos", resp.ErrorMessage("Failed to fetch todos"))

	resp = &Response{Body: []byte(`not json`)}
	require.Equal(t, "Login failed", resp.ErrorMessage("Login failed"))
}
