package usecase

import (
	"context"
	"fmt"
	"strings"

	"studyhub/internal/modules/auth/domain"
	authdto "studyhub/internal/modules/auth/dto"
	authin "studyhub/internal/modules/auth/port/in"
	authout "studyhub/internal/modules/auth/port/out"
	"studyhub/internal/modules/auth/service"
	apperrors "studyhub/internal/platform/errors"
)

type Interactor struct {
	svc *service.AuthService
	api authout.AuthAPI
}

func NewInteractor(svc *service.AuthService, api authout.AuthAPI) authin.Usecase {
	return &Interactor{svc: svc, api: api}
}

func (i *Interactor) Login(ctx context.Context, input authdto.LoginInput) (authdto.SessionOutput, error) {
	if strings.TrimSpace(input.Username) == "" || input.Password == "" {
		return authdto.SessionOutput{}, fmt.Errorf("%w: username and password are required", apperrors.ErrValidation)
	}
	session, err := i.api.Login(ctx, input.Username, input.Password)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	if err := i.svc.Establish(ctx, session); err != nil {
		return authdto.SessionOutput{}, fmt.Errorf("store credentials: %w", err)
	}
	return sessionOutput(session.User), nil
}

func (i *Interactor) Register(ctx context.Context, input authdto.RegisterInput) (authdto.SessionOutput, error) {
	if strings.TrimSpace(input.Username) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return authdto.SessionOutput{}, fmt.Errorf("%w: username, email, and password are required", apperrors.ErrValidation)
	}
	profile, err := i.api.Register(ctx, input.Username, input.Email, input.Password)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	return sessionOutput(profile), nil
}

func (i *Interactor) Current(ctx context.Context) (authdto.SessionOutput, error) {
	session, err := i.svc.Current(ctx)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	return sessionOutput(session.User), nil
}

func (i *Interactor) WhoAmI(ctx context.Context) (authdto.SessionOutput, error) {
	if _, err := i.svc.Current(ctx); err != nil {
		return authdto.SessionOutput{}, err
	}
	profile, err := i.api.CurrentUser(ctx)
	if err != nil {
		return authdto.SessionOutput{}, err
	}
	return sessionOutput(profile), nil
}

func (i *Interactor) Logout(ctx context.Context) error {
	return i.svc.Logout(ctx)
}

func sessionOutput(p domain.Profile) authdto.SessionOutput {
	return authdto.SessionOutput{
		Username:    p.Username,
		Email:       p.Email,
		DisplayName: p.DisplayName(),
	}
}
