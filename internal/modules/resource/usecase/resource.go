package usecase

import (
	"context"
	"fmt"

	moderationin "studyhub/internal/modules/moderation/port/in"
	"studyhub/internal/modules/resource/domain"
	"studyhub/internal/modules/resource/dto"
	resourceout "studyhub/internal/modules/resource/port/out"
	apperrors "studyhub/internal/platform/errors"
)

type Interactor struct {
	api        resourceout.ResourceAPI
	moderation moderationin.Usecase
}

func NewInteractor(api resourceout.ResourceAPI, moderation moderationin.Usecase) *Interactor {
	return &Interactor{api: api, moderation: moderation}
}

func (i *Interactor) Find(ctx context.Context, input dto.SearchInput) (dto.SearchOutput, error) {
	req := domain.SearchRequest{
		Subject:      input.Subject,
		ResourceType: input.ResourceType,
		Limit:        input.Limit,
	}
	if req.Limit == 0 {
		req.Limit = domain.DefaultLimit
	}
	if err := req.Validate(); err != nil {
		return dto.SearchOutput{}, err
	}
	decision, err := i.moderation.Check(ctx, req.Subject)
	if err != nil {
		return dto.SearchOutput{}, fmt.Errorf("classify subject: %w", err)
	}
	if !decision.Allowed {
		return dto.SearchOutput{}, fmt.Errorf("%w: %s. %s",
			apperrors.ErrContentBlocked, decision.Category, decision.Suggestion)
	}
	result, err := i.api.Find(ctx, req)
	if err != nil {
		return dto.SearchOutput{}, err
	}
	out := dto.SearchOutput{Feedback: result.Feedback}
	for _, res := range result.Resources {
		out.Resources = append(out.Resources, dto.ResourceOutput{
			Title:           res.Title,
			Description:     res.Description,
			ResourceType:    res.ResourceType,
			Difficulty:      res.Difficulty,
			URL:             res.URL,
			SimilarityScore: res.SimilarityScore,
			Tags:            res.Tags,
		})
	}
	return out, nil
}
