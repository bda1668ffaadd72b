package service

import (
	"context"
	"fmt"
	"time"

	"studyhub/internal/modules/progress/domain"
	progressout "studyhub/internal/modules/progress/port/out"
	"studyhub/internal/platform/clock"
)

// ProgressService owns the load → mutate → recompute → save cycle around the
// single ledger slot. Every mutation recomputes the cached streak and runs
// the achievement evaluator before persisting, then rebuilds the history
// projection.
type ProgressService struct {
	clock     clock.Clock
	store     progressout.LedgerStore
	projector progressout.HistoryProjector
}

func NewProgressService(clock clock.Clock, store progressout.LedgerStore, projector progressout.HistoryProjector) *ProgressService {
	return &ProgressService{clock: clock, store: store, projector: projector}
}

func (s *ProgressService) Load(ctx context.Context) (domain.Ledger, error) {
	ledger, err := s.store.Load(ctx)
	if err != nil {
		return domain.Ledger{}, err
	}
	ledger.Normalize()
	return ledger, nil
}

// Mutate applies fn to the current ledger and persists the result. Returns
// the saved ledger and any achievements the mutation newly unlocked.
func (s *ProgressService) Mutate(ctx context.Context, fn func(*domain.Ledger) error) (domain.Ledger, []domain.AchievementID, error) {
	ledger, err := s.Load(ctx)
	if err != nil {
		return domain.Ledger{}, nil, err
	}
	if err := fn(&ledger); err != nil {
		return domain.Ledger{}, nil, err
	}

	today := s.clock.Now()
	ledger.Streak = ledger.StreakOn(today)
	unlocked := domain.EvaluateAchievements(ledger, today)
	ledger.Achievements = append(ledger.Achievements, unlocked...)

	if err := s.persist(ctx, ledger); err != nil {
		return domain.Ledger{}, nil, err
	}
	return ledger, unlocked, nil
}

// Reset discards everything, including achievements, and persists the empty
// ledger immediately. No evaluation runs; a fresh ledger unlocks nothing.
func (s *ProgressService) Reset(ctx context.Context) error {
	ledger := domain.NewLedger()
	return s.persist(ctx, ledger)
}

func (s *ProgressService) RecentDays(ctx context.Context, limit int) ([]domain.DayRecord, error) {
	return s.projector.RecentDays(ctx, limit)
}

func (s *ProgressService) TodayKey() string {
	return domain.DateKey(s.clock.Now())
}

func (s *ProgressService) NowTime() time.Time {
	return s.clock.Now()
}

func (s *ProgressService) persist(ctx context.Context, ledger domain.Ledger) error {
	if err := s.store.Save(ctx, ledger); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	if err := s.projector.Rebuild(ctx, ledger); err != nil {
		return fmt.Errorf("rebuild history projection: %w", err)
	}
	return nil
}
