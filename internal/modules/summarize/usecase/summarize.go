package usecase

import (
	"context"

	"studyhub/internal/modules/summarize/domain"
	"studyhub/internal/modules/summarize/dto"
	summarizein "studyhub/internal/modules/summarize/port/in"
	"studyhub/internal/modules/summarize/service"
)

type Interactor struct {
	svc *service.SummarizeService
}

func NewInteractor(svc *service.SummarizeService) summarizein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Upload(ctx context.Context, input dto.UploadInput) (dto.ResultOutput, error) {
	result, err := i.svc.Upload(ctx, domain.UploadRequest{Path: input.Path, Question: input.Question})
	if err != nil {
		return dto.ResultOutput{}, err
	}
	return dto.ResultOutput{
		Type:     result.Type,
		Filename: result.Filename,
		Summary:  result.Summary,
		Question: result.Question,
		Answer:   result.Answer,
	}, nil
}
