package auth

import (
	"context"

	"github.com/tractionhq/mobilecore/internal/credential"
	"github.com/tractionhq/mobilecore/internal/domain/user"
)

// Client provides the auth endpoints the store depends on.
type Client interface {
	Login(ctx context.Context, email, password, tenant string) (string, error)
	GetProfile(ctx context.Context) (*user.User, error)
}

// Gateway is the header-injection surface of the HTTP gateway. ApplyCredential
// is the shared convergence point: the gateway's own boot-time storage load
// and this store's rehydration both go through it.
type Gateway interface {
	ApplyCredential(cred credential.Credential)
	ClearAuth()
}

// CredentialStore persists credentials across app restarts.
type CredentialStore interface {
	Save(cred credential.Credential) error
	Load() credential.Credential
	Clear() error
}
