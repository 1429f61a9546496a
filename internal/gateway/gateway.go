// Package gateway is the single point of outbound HTTP configuration: base
// URL, default headers, timeout, and auth/tenant header injection. Every
// resource client goes through it.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tractionhq/mobilecore/internal/credential"
	"github.com/tractionhq/mobilecore/internal/keyval"
)

const (
	// requestTimeout bounds every request; there is no per-call override.
	requestTimeout = 30 * time.Second

	// installationIDKey is where the per-install id lives in durable storage.
	installationIDKey = "installation-id"
)

// Client issues JSON requests with the current auth headers attached.
type Client struct {
	httpClient     *http.Client
	baseURL        string
	logger         *slog.Logger
	installationID string

	mu     sync.Mutex
	token  string
	tenant string
}

// New creates a gateway client. If storage is non-nil, a previously persisted
// credential is loaded and applied immediately, so requests issued before the
// auth store finishes rehydrating still carry correct headers. The auth store
// independently converges on the same header state through ApplyCredential;
// both paths are idempotent.
func New(baseURL string, storage keyval.Storage, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
		logger:     logger,
	}

	if storage != nil {
		c.installationID = loadInstallationID(storage, logger)
		c.ApplyCredential(credential.NewStore(storage, logger).Load())
	}

	return c
}

func loadInstallationID(storage keyval.Storage, logger *slog.Logger) string {
	id, ok, err := storage.GetItem(installationIDKey)
	if err == nil && ok && id != "" {
		return id
	}

	id = uuid.NewString()
	if err := storage.SetItem(installationIDKey, id); err != nil {
		logger.Debug("could not persist installation id", "error", err)
	}
	return id
}

// SetAuth attaches Authorization and tenant-id headers to all subsequent
// requests. Safe to call repeatedly with the same values.
func (c *Client) SetAuth(token, tenant string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.tenant = tenant
}

// ClearAuth removes both auth headers; subsequent requests are anonymous.
func (c *Client) ClearAuth() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = ""
	c.tenant = ""
}

// ApplyCredential is the single convergence point for header state: both the
// constructor's storage load and the auth store's rehydration call it.
func (c *Client) ApplyCredential(cred credential.Credential) {
	if cred.Valid() {
		c.SetAuth(cred.Token, cred.Tenant)
	}
}

// Token returns the currently attached bearer token, empty if none.
func (c *Client) Token() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.token
}

// Tenant returns the currently attached tenant key, empty if none.
func (c *Client) Tenant() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tenant
}

// RequestOption customizes a single request.
type RequestOption func(*http.Request)

// WithHeader sets a header on one request, overriding any default. Login uses
// it to send tenant-id before a credential exists.
func WithHeader(name, value string) RequestOption {
	return func(req *http.Request) {
		req.Header.Set(name, value)
	}
}

// Get issues a GET with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, params url.Values, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, params, nil, opts)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPost, path, nil, body, opts)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPut, path, nil, body, opts)
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodPatch, path, nil, body, opts)
}

// Delete issues a DELETE with optional query parameters.
func (c *Client) Delete(ctx context.Context, path string, params url.Values, opts ...RequestOption) (*Response, error) {
	return c.do(ctx, http.MethodDelete, path, params, nil, opts)
}

// do builds and executes the request. HTTP error statuses come back as a
// Response with OK=false; only transport failures return a non-nil error.
func (c *Client) do(ctx context.Context, method, path string, params url.Values, body any, opts []RequestOption) (*Response, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.installationID != "" {
		req.Header.Set("x-request-id", c.installationID+"-"+uuid.NewString())
	}

	c.mu.Lock()
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if c.tenant != "" {
		req.Header.Set("tenant-id", c.tenant)
	}
	c.mu.Unlock()

	for _, opt := range opts {
		opt(req)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed", "method", method, "path", path, "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 8<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("request completed",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	return &Response{
		OK:     resp.StatusCode >= 200 && resp.StatusCode < 300,
		Status: resp.StatusCode,
		Body:   respBody,
	}, nil
}
