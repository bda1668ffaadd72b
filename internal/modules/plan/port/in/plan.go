package in

import (
	"context"

	"studyhub/internal/modules/plan/dto"
)

type Usecase interface {
	Simple(ctx context.Context, input dto.SimplePlanInput) (dto.SimplePlanOutput, error)
	// Advanced generates a plan and adopts it into the progress ledger on
	// success, exactly once.
	Advanced(ctx context.Context, input dto.AdvancedPlanInput) (dto.AdvancedPlanOutput, error)
	Subjects(ctx context.Context) ([]string, error)
}
