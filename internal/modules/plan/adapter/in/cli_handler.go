package in

import (
	"context"

	plandto "studyhub/internal/modules/plan/dto"
	planin "studyhub/internal/modules/plan/port/in"
)

type CLIHandler struct {
	usecase planin.Usecase
}

func NewCLIHandler(usecase planin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Simple(ctx context.Context, goal string) (plandto.SimplePlanOutput, error) {
	return h.usecase.Simple(ctx, plandto.SimplePlanInput{Goal: goal})
}

func (h CLIHandler) Advanced(ctx context.Context, input plandto.AdvancedPlanInput) (plandto.AdvancedPlanOutput, error) {
	return h.usecase.Advanced(ctx, input)
}

func (h CLIHandler) Subjects(ctx context.Context) ([]string, error) {
	return h.usecase.Subjects(ctx)
}
