package in

import (
	"context"

	moderationdto "studyhub/internal/modules/moderation/dto"
	moderationin "studyhub/internal/modules/moderation/port/in"
)

type CLIHandler struct {
	usecase moderationin.Usecase
}

func NewCLIHandler(usecase moderationin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Check(ctx context.Context, text string) (moderationdto.DecisionOutput, error) {
	return h.usecase.Check(ctx, text)
}

func (h CLIHandler) Doctor(ctx context.Context) ([]moderationdto.DoctorResult, error) {
	return h.usecase.Doctor(ctx)
}
