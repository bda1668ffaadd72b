package out

import (
	"context"

	"studyhub/internal/modules/auth/domain"
)

// CredentialStore persists the session in durable local storage. Load must
// return apperrors.ErrUnauthenticated when nothing usable is stored.
type CredentialStore interface {
	Save(ctx context.Context, session domain.Session) error
	Load(ctx context.Context) (domain.Session, error)
	Clear(ctx context.Context) error
}

// AuthAPI is the external auth backend reached over HTTP.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (domain.Session, error)
	Register(ctx context.Context, username, email, password string) (domain.Profile, error)
	CurrentUser(ctx context.Context) (domain.Profile, error)
}
