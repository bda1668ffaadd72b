package usecase

import (
	"context"
	"fmt"

	"studyhub/internal/modules/progress/domain"
	progressdto "studyhub/internal/modules/progress/dto"
	progressin "studyhub/internal/modules/progress/port/in"
	"studyhub/internal/modules/progress/service"
	apperrors "studyhub/internal/platform/errors"
)

type Interactor struct {
	svc *service.ProgressService
}

func NewInteractor(svc *service.ProgressService) progressin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) AdoptPlan(ctx context.Context, input progressdto.AdoptPlanInput) error {
	if input.Subject == "" {
		return fmt.Errorf("%w: plan subject is required", apperrors.ErrValidation)
	}
	_, _, err := i.svc.Mutate(ctx, func(l *domain.Ledger) error {
		return l.AdoptPlan(domain.PlanSummary{
			Subject:    input.Subject,
			DailyHours: input.DailyHours,
			TotalHours: input.TotalHours,
			Difficulty: input.Difficulty,
		}, i.svc.NowTime())
	})
	return err
}

func (i *Interactor) MarkToday(ctx context.Context) (progressdto.MarkOutput, error) {
	return i.MarkDate(ctx, progressdto.MarkInput{Date: i.svc.TodayKey(), Completed: true})
}

func (i *Interactor) MarkDate(ctx context.Context, input progressdto.MarkInput) (progressdto.MarkOutput, error) {
	ledger, unlocked, err := i.svc.Mutate(ctx, func(l *domain.Ledger) error {
		return l.MarkDate(input.Date, input.Completed)
	})
	if err != nil {
		return progressdto.MarkOutput{}, err
	}
	return progressdto.MarkOutput{
		Date:              input.Date,
		Completed:         input.Completed,
		Streak:            ledger.Streak,
		CompletionPercent: ledger.CompletionPercent(),
		NewAchievements:   achievementOutputs(unlocked),
	}, nil
}

func (i *Interactor) Show(ctx context.Context) (progressdto.LedgerOutput, error) {
	ledger, err := i.svc.Load(ctx)
	if err != nil {
		return progressdto.LedgerOutput{}, err
	}
	out := progressdto.LedgerOutput{
		StartDate:         ledger.StartDate,
		CompletedDays:     ledger.CompletedDays(),
		Streak:            ledger.StreakOn(i.svc.NowTime()),
		CompletionPercent: ledger.CompletionPercent(),
		Achievements:      achievementOutputs(ledger.Achievements),
	}
	if ledger.CurrentPlan != nil {
		out.Plan = &progressdto.PlanOutput{
			Subject:     ledger.CurrentPlan.Subject,
			DailyHours:  ledger.CurrentPlan.DailyHours,
			TotalHours:  ledger.CurrentPlan.TotalHours,
			Difficulty:  ledger.CurrentPlan.Difficulty,
			PlannedDays: ledger.CurrentPlan.PlannedDays(),
		}
	}
	return out, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]progressdto.DayOutput, error) {
	if limit <= 0 {
		limit = 30
	}
	records, err := i.svc.RecentDays(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]progressdto.DayOutput, 0, len(records))
	for _, r := range records {
		out = append(out, progressdto.DayOutput{Date: r.Date, Completed: r.Completed})
	}
	return out, nil
}

func (i *Interactor) Reset(ctx context.Context) error {
	return i.svc.Reset(ctx)
}

func achievementOutputs(ids []domain.AchievementID) []progressdto.AchievementOutput {
	out := make([]progressdto.AchievementOutput, 0, len(ids))
	for _, id := range ids {
		info := id.Info()
		out = append(out, progressdto.AchievementOutput{
			ID:          string(info.ID),
			Title:       info.Title,
			Description: info.Description,
		})
	}
	return out
}

