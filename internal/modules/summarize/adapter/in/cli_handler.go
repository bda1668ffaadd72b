package in

import (
	"context"

	summarizedto "studyhub/internal/modules/summarize/dto"
	summarizein "studyhub/internal/modules/summarize/port/in"
)

type CLIHandler struct {
	usecase summarizein.Usecase
}

func NewCLIHandler(usecase summarizein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Upload(ctx context.Context, path, question string) (summarizedto.ResultOutput, error) {
	return h.usecase.Upload(ctx, summarizedto.UploadInput{Path: path, Question: question})
}
