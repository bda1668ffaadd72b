package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Profile is the user record the auth backend returns alongside a token.
type Profile struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

func (p Profile) DisplayName() string {
	if p.FirstName != "" && p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	if p.Username != "" {
		return p.Username
	}
	return "User"
}

// Session pairs the bearer token with the profile it was issued for. It is
// the single source of truth for "is the user authenticated".
type Session struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

func (s Session) Validate() error {
	if strings.TrimSpace(s.Token) == "" {
		return fmt.Errorf("token is required")
	}
	if strings.TrimSpace(s.User.Username) == "" {
		return fmt.Errorf("username is required")
	}
	return nil
}

// TokenExpired reports whether the bearer token's embedded exp claim is in
// the past. The signature is not checked; only the backend can verify it.
// A token that does not decode at all counts as expired.
func TokenExpired(token string, now time.Time) bool {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(now)
}
