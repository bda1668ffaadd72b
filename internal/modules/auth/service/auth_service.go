package service

import (
	"context"
	"errors"

	"studyhub/internal/modules/auth/domain"
	authout "studyhub/internal/modules/auth/port/out"
	"studyhub/internal/platform/clock"
	apperrors "studyhub/internal/platform/errors"
)

type AuthService struct {
	clock clock.Clock
	store authout.CredentialStore
}

func NewAuthService(clock clock.Clock, store authout.CredentialStore) *AuthService {
	return &AuthService{clock: clock, store: store}
}

// Current loads the stored session. An unusable session (missing, malformed,
// or structurally expired) clears storage and reports unauthenticated instead
// of leaking a stale token.
func (s *AuthService) Current(ctx context.Context) (domain.Session, error) {
	session, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUnauthenticated) {
			_ = s.store.Clear(ctx)
		}
		return domain.Session{}, apperrors.ErrUnauthenticated
	}
	if session.Validate() != nil || domain.TokenExpired(session.Token, s.clock.Now()) {
		_ = s.store.Clear(ctx)
		return domain.Session{}, apperrors.ErrUnauthenticated
	}
	return session, nil
}

func (s *AuthService) Establish(ctx context.Context, session domain.Session) error {
	if err := session.Validate(); err != nil {
		return err
	}
	return s.store.Save(ctx, session)
}

// Logout clears durable and in-memory state unconditionally; it has no
// failure mode worth surfacing beyond the raw storage error.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.store.Clear(ctx)
}
