package api

import (
	"context"
	"errors"
	"fmt"

	"github.com/tractionhq/mobilecore/internal/domain/user"
	"github.com/tractionhq/mobilecore/internal/gateway"
)

// AuthClient talks to the /auth/users endpoints. It never stores anything;
// propagating tokens into the gateway and credential store is the auth
// store's job.
type AuthClient struct {
	gw *gateway.Client
}

// NewAuthClient creates an auth client over the gateway.
func NewAuthClient(gw *gateway.Client) *AuthClient {
	return &AuthClient{gw: gw}
}

// Login exchanges credentials for a bearer token. The tenant is sent as a
// per-request header since no credential is attached yet.
func (c *AuthClient) Login(ctx context.Context, email, password, tenant string) (string, error) {
	body := map[string]string{"email": email, "password": password}

	resp, err := c.gw.Post(ctx, "/auth/users/login", body, gateway.WithHeader("tenant-id", tenant))
	if err != nil {
		return "", ErrNetwork
	}
	if !resp.OK {
		return "", responseError(resp, "Login failed")
	}

	var payload struct {
		Token string `json:"token"`
	}
	if err := resp.Decode(&payload); err != nil || payload.Token == "" {
		return "", errors.New("No token received")
	}
	return payload.Token, nil
}

// GetProfile fetches the current user. Auth headers are already attached by
// the gateway.
func (c *AuthClient) GetProfile(ctx context.Context) (*user.User, error) {
	resp, err := c.gw.Get(ctx, "/auth/users/me", nil)
	if err != nil {
		return nil, ErrNetwork
	}
	if !resp.OK {
		return nil, responseError(resp, "Failed to fetch profile")
	}

	var u user.User
	if err := resp.Decode(&u); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &u, nil
}
