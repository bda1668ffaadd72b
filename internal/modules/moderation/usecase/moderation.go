package usecase

import (
	"context"

	"studyhub/internal/modules/moderation/dto"
	moderationin "studyhub/internal/modules/moderation/port/in"
	"studyhub/internal/modules/moderation/service"
)

type Interactor struct {
	svc *service.ModerationService
}

func NewInteractor(svc *service.ModerationService) moderationin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Check(ctx context.Context, text string) (dto.DecisionOutput, error) {
	decision, err := i.svc.Check(ctx, text)
	if err != nil {
		return dto.DecisionOutput{}, err
	}
	return dto.DecisionOutput{
		Allowed:    decision.Allowed,
		Category:   decision.Category,
		Suggestion: decision.Suggestion,
	}, nil
}

func (i *Interactor) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	return i.svc.Doctor(ctx)
}
