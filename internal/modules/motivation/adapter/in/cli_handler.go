package in

import (
	"context"

	motivationdto "studyhub/internal/modules/motivation/dto"
	motivationin "studyhub/internal/modules/motivation/port/in"
)

type CLIHandler struct {
	usecase motivationin.Usecase
}

func NewCLIHandler(usecase motivationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Enhanced(ctx context.Context, mood string) (motivationdto.MotivationOutput, error) {
	return h.usecase.Enhanced(ctx, motivationdto.MotivationInput{Mood: mood})
}
