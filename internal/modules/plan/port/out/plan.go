package out

import (
	"context"

	"studyhub/internal/modules/plan/domain"
)

// PlannerAPI talks to the backend planner endpoints.
type PlannerAPI interface {
	Simple(ctx context.Context, req domain.SimplePlanRequest) (domain.SimplePlan, error)
	Advanced(ctx context.Context, req domain.AdvancedPlanRequest) (domain.StudyPlan, error)
	Subjects(ctx context.Context) ([]string, error)
}
