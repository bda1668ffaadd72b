package in

import (
	"context"

	"studyhub/internal/modules/progress/dto"
)

type Usecase interface {
	// AdoptPlan records a freshly generated plan in the ledger. Existing
	// history and start date survive; only Reset clears them.
	AdoptPlan(ctx context.Context, input dto.AdoptPlanInput) error
	MarkToday(ctx context.Context) (dto.MarkOutput, error)
	MarkDate(ctx context.Context, input dto.MarkInput) (dto.MarkOutput, error)
	Show(ctx context.Context) (dto.LedgerOutput, error)
	History(ctx context.Context, limit int) ([]dto.DayOutput, error)
	Reset(ctx context.Context) error
}
