package usecase

import (
	"context"
	"fmt"

	moderationin "studyhub/internal/modules/moderation/port/in"
	"studyhub/internal/modules/motivation/domain"
	"studyhub/internal/modules/motivation/dto"
	motivationout "studyhub/internal/modules/motivation/port/out"
	apperrors "studyhub/internal/platform/errors"
)

type Interactor struct {
	api        motivationout.MotivationAPI
	moderation moderationin.Usecase
}

func NewInteractor(api motivationout.MotivationAPI, moderation moderationin.Usecase) *Interactor {
	return &Interactor{api: api, moderation: moderation}
}

func (i *Interactor) Enhanced(ctx context.Context, input dto.MotivationInput) (dto.MotivationOutput, error) {
	req := domain.Request{Mood: input.Mood}
	if err := req.Validate(); err != nil {
		return dto.MotivationOutput{}, err
	}
	decision, err := i.moderation.Check(ctx, req.Mood)
	if err != nil {
		return dto.MotivationOutput{}, fmt.Errorf("classify mood text: %w", err)
	}
	if !decision.Allowed {
		return dto.MotivationOutput{}, fmt.Errorf("%w: %s. %s",
			apperrors.ErrContentBlocked, decision.Category, decision.Suggestion)
	}
	motivation, err := i.api.Enhanced(ctx, req)
	if err != nil {
		return dto.MotivationOutput{}, err
	}
	out := dto.MotivationOutput{
		QuoteText:     motivation.Quote.Text,
		QuoteAuthor:   motivation.Quote.Author,
		Tip:           motivation.Tip.Text,
		Encouragement: motivation.Encouragement,
	}
	if motivation.Analysis != nil {
		out.Analysis = &dto.AnalysisOutput{
			DetectedMood:    motivation.Analysis.DetectedMood,
			EnergyLevel:     motivation.Analysis.EnergyLevel,
			ConfidenceLevel: motivation.Analysis.ConfidenceLevel,
			Suggestions:     motivation.Analysis.Suggestions,
		}
	}
	return out, nil
}
