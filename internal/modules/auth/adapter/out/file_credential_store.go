package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"studyhub/internal/modules/auth/domain"
	authout "studyhub/internal/modules/auth/port/out"
	"studyhub/internal/platform/clock"
	apperrors "studyhub/internal/platform/errors"
)

// FileCredentialStore keeps the session in one JSON file under the data dir.
// It doubles as the gateway's credential source: Token only hands out a
// structurally valid, unexpired token and ForceLogout maps to Clear.
type FileCredentialStore struct {
	path  string
	clock clock.Clock
}

func NewFileCredentialStore(path string, clock clock.Clock) *FileCredentialStore {
	return &FileCredentialStore{path: path, clock: clock}
}

var _ authout.CredentialStore = (*FileCredentialStore)(nil)

func (s *FileCredentialStore) Save(_ context.Context, session domain.Session) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create credentials dir: %w", err)
	}
	payload, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal credentials: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}

func (s *FileCredentialStore) Load(_ context.Context) (domain.Session, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Session{}, apperrors.ErrUnauthenticated
		}
		return domain.Session{}, fmt.Errorf("read credentials: %w", err)
	}
	session := domain.Session{}
	if err := json.Unmarshal(payload, &session); err != nil {
		return domain.Session{}, fmt.Errorf("decode credentials: %w", err)
	}
	if session.Token == "" {
		return domain.Session{}, apperrors.ErrUnauthenticated
	}
	return session, nil
}

func (s *FileCredentialStore) Clear(_ context.Context) error {
	if err := os.Remove(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// Token implements api.CredentialSource. Anything unusable reads as "no
// session" so protected flows fail before touching the network.
func (s *FileCredentialStore) Token(ctx context.Context) (string, error) {
	session, err := s.Load(ctx)
	if err != nil {
		return "", nil
	}
	if domain.TokenExpired(session.Token, s.clock.Now()) {
		_ = s.Clear(ctx)
		return "", nil
	}
	return session.Token, nil
}

// ForceLogout implements api.CredentialSource; invoked by the gateway on 401.
func (s *FileCredentialStore) ForceLogout(ctx context.Context) error {
	return s.Clear(ctx)
}
