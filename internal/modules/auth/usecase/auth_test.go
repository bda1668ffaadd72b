package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"studyhub/internal/modules/auth/domain"
	authdto "studyhub/internal/modules/auth/dto"
	"studyhub/internal/modules/auth/service"
	"studyhub/internal/platform/clock"
	apperrors "studyhub/internal/platform/errors"
)

type memoryCredentials struct {
	session *domain.Session
	clears  int
}

func (m *memoryCredentials) Save(ctx context.Context, session domain.Session) error {
	m.session = &session
	return nil
}

func (m *memoryCredentials) Load(ctx context.Context) (domain.Session, error) {
	if m.session == nil {
		return domain.Session{}, apperrors.ErrUnauthenticated
	}
	return *m.session, nil
}

func (m *memoryCredentials) Clear(ctx context.Context) error {
	m.session = nil
	m.clears++
	return nil
}

type fakeAuthAPI struct {
	session    domain.Session
	profile    domain.Profile
	loginErr   error
	loginCalls int
}

func (f *fakeAuthAPI) Login(ctx context.Context, username, password string) (domain.Session, error) {
	f.loginCalls++
	if f.loginErr != nil {
		return domain.Session{}, f.loginErr
	}
	return f.session, nil
}

func (f *fakeAuthAPI) Register(ctx context.Context, username, email, password string) (domain.Profile, error) {
	return f.profile, nil
}

func (f *fakeAuthAPI) CurrentUser(ctx context.Context) (domain.Profile, error) {
	return f.profile, nil
}

var testNow = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func tokenExpiring(t *testing.T, at time.Time) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(at),
	}).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}

func newAuthFixture(api *fakeAuthAPI) (*Interactor, *memoryCredentials) {
	store := &memoryCredentials{}
	svc := service.NewAuthService(clock.Fixed{At: testNow}, store)
	return &Interactor{svc: svc, api: api}, store
}

func TestLoginStoresSession(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{session: domain.Session{
		Token: tokenExpiring(t, testNow.Add(time.Hour)),
		User:  domain.Profile{Username: "ada", Email: "ada@example.com", FirstName: "Ada", LastName: "Lovelace"},
	}}
	interactor, store := newAuthFixture(api)

	out, err := interactor.Login(context.Background(), authdto.LoginInput{Username: "ada", Password: "pw"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if out.DisplayName != "Ada Lovelace" || out.Username != "ada" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if store.session == nil || store.session.Token == "" {
		t.Fatalf("session not persisted")
	}
}

func TestLoginValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	api := &fakeAuthAPI{}
	interactor, _ := newAuthFixture(api)

	tests := []struct {
		name  string
		input authdto.LoginInput
	}{
		{name: "no username", input: authdto.LoginInput{Password: "pw"}},
		{name: "blank username", input: authdto.LoginInput{Username: "  ", Password: "pw"}},
		{name: "no password", input: authdto.LoginInput{Username: "ada"}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := interactor.Login(context.Background(), tc.input)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
		})
	}
	if api.loginCalls != 0 {
		t.Fatalf("invalid input must not reach the backend, got %d calls", api.loginCalls)
	}
}

func TestCurrentClearsExpiredSession(t *testing.T) {
	t.Parallel()

	interactor, store := newAuthFixture(&fakeAuthAPI{})
	store.session = &domain.Session{
		Token: tokenExpiring(t, testNow.Add(-time.Minute)),
		User:  domain.Profile{Username: "ada"},
	}

	_, err := interactor.Current(context.Background())
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated, got %v", err)
	}
	if store.session != nil {
		t.Fatalf("expired session must be cleared from storage")
	}
}

func TestCurrentReturnsValidSession(t *testing.T) {
	t.Parallel()

	interactor, store := newAuthFixture(&fakeAuthAPI{})
	store.session = &domain.Session{
		Token: tokenExpiring(t, testNow.Add(time.Hour)),
		User:  domain.Profile{Username: "ada", Email: "ada@example.com"},
	}

	out, err := interactor.Current(context.Background())
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if out.Username != "ada" || out.Email != "ada@example.com" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestWhoAmIRequiresLocalSessionFirst(t *testing.T) {
	t.Parallel()

	interactor, _ := newAuthFixture(&fakeAuthAPI{profile: domain.Profile{Username: "ada"}})
	_, err := interactor.WhoAmI(context.Background())
	if !errors.Is(err, apperrors.ErrUnauthenticated) {
		t.Fatalf("want ErrUnauthenticated without a session, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	t.Parallel()

	interactor, store := newAuthFixture(&fakeAuthAPI{})
	store.session = &domain.Session{Token: "tok", User: domain.Profile{Username: "ada"}}
	if err := interactor.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if store.session != nil {
		t.Fatalf("session survived logout")
	}
}
