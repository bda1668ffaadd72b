package in

import (
	"context"

	progressdto "studyhub/internal/modules/progress/dto"
	progressin "studyhub/internal/modules/progress/port/in"
)

type CLIHandler struct {
	usecase progressin.Usecase
}

func NewCLIHandler(usecase progressin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) MarkToday(ctx context.Context) (progressdto.MarkOutput, error) {
	return h.usecase.MarkToday(ctx)
}

func (h CLIHandler) MarkDate(ctx context.Context, date string, completed bool) (progressdto.MarkOutput, error) {
	return h.usecase.MarkDate(ctx, progressdto.MarkInput{Date: date, Completed: completed})
}

func (h CLIHandler) Show(ctx context.Context) (progressdto.LedgerOutput, error) {
	return h.usecase.Show(ctx)
}

func (h CLIHandler) History(ctx context.Context, limit int) ([]progressdto.DayOutput, error) {
	return h.usecase.History(ctx, limit)
}

func (h CLIHandler) Reset(ctx context.Context) error {
	return h.usecase.Reset(ctx)
}
