package in

import (
	"context"

	"studyhub/internal/modules/auth/dto"
)

type Usecase interface {
	Login(ctx context.Context, input dto.LoginInput) (dto.SessionOutput, error)
	Register(ctx context.Context, input dto.RegisterInput) (dto.SessionOutput, error)
	// Current reports the stored session; apperrors.ErrUnauthenticated when
	// there is none (expired and malformed credentials count as none).
	Current(ctx context.Context) (dto.SessionOutput, error)
	// WhoAmI asks the backend for the profile behind the stored token.
	WhoAmI(ctx context.Context) (dto.SessionOutput, error)
	Logout(ctx context.Context) error
}
