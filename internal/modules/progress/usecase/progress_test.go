package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"studyhub/internal/modules/progress/domain"
	progressdto "studyhub/internal/modules/progress/dto"
	"studyhub/internal/modules/progress/service"
	"studyhub/internal/platform/clock"
	apperrors "studyhub/internal/platform/errors"
)

type memoryStore struct {
	ledger  domain.Ledger
	loadErr error
	saveErr error
	saves   int
}

func (m *memoryStore) Load(ctx context.Context) (domain.Ledger, error) {
	if m.loadErr != nil {
		return domain.Ledger{}, m.loadErr
	}
	return m.ledger, nil
}

func (m *memoryStore) Save(ctx context.Context, ledger domain.Ledger) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.ledger = ledger
	m.saves++
	return nil
}

type memoryProjector struct {
	rebuilds int
	last     domain.Ledger
}

func (m *memoryProjector) Rebuild(ctx context.Context, ledger domain.Ledger) error {
	m.rebuilds++
	m.last = ledger
	return nil
}

func (m *memoryProjector) RecentDays(ctx context.Context, limit int) ([]domain.DayRecord, error) {
	records := []domain.DayRecord{}
	for date, done := range m.last.DailyProgress {
		records = append(records, domain.DayRecord{Date: date, Completed: done})
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

func newFixture(t *testing.T, now string) (*Interactor, *memoryStore, *memoryProjector) {
	t.Helper()
	at, err := time.Parse(domain.DateLayout, now)
	if err != nil {
		t.Fatalf("parse now: %v", err)
	}
	store := &memoryStore{ledger: domain.NewLedger()}
	projector := &memoryProjector{}
	svc := service.NewProgressService(clock.Fixed{At: at}, store, projector)
	return &Interactor{svc: svc}, store, projector
}

func TestMarkTodayComputesStreakAndAchievements(t *testing.T) {
	t.Parallel()

	interactor, store, projector := newFixture(t, "2026-09-01")
	store.ledger.DailyProgress["2026-08-30"] = true
	store.ledger.DailyProgress["2026-08-31"] = true

	out, err := interactor.MarkToday(context.Background())
	if err != nil {
		t.Fatalf("mark today: %v", err)
	}
	if out.Date != "2026-09-01" || !out.Completed {
		t.Fatalf("unexpected mark: %+v", out)
	}
	if out.Streak != 3 {
		t.Fatalf("streak: want 3 got %d", out.Streak)
	}

	ids := map[string]bool{}
	for _, a := range out.NewAchievements {
		ids[a.ID] = true
		if a.Title == "" || a.Description == "" {
			t.Fatalf("achievement output missing catalog info: %+v", a)
		}
	}
	if !ids["first-day"] || !ids["three-streak"] {
		t.Fatalf("expected first-day and three-streak, got %+v", out.NewAchievements)
	}

	if store.saves != 1 {
		t.Fatalf("ledger should be saved once, got %d", store.saves)
	}
	if projector.rebuilds != 1 {
		t.Fatalf("projection should rebuild once, got %d", projector.rebuilds)
	}
	if store.ledger.Streak != 3 {
		t.Fatalf("persisted streak: want 3 got %d", store.ledger.Streak)
	}
}

func TestMarkDateRejectsBadInputBeforeSaving(t *testing.T) {
	t.Parallel()

	interactor, store, projector := newFixture(t, "2026-09-01")
	_, err := interactor.MarkDate(context.Background(), progressdto.MarkInput{Date: "yesterday", Completed: true})
	if err == nil {
		t.Fatalf("expected error for bad date")
	}
	if store.saves != 0 || projector.rebuilds != 0 {
		t.Fatalf("nothing should persist on validation failure")
	}
}

func TestAdoptPlanRequiresSubject(t *testing.T) {
	t.Parallel()

	interactor, _, _ := newFixture(t, "2026-09-01")
	err := interactor.AdoptPlan(context.Background(), progressdto.AdoptPlanInput{DailyHours: 2, TotalHours: 10})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestAdoptPlanOpensTrackingWindow(t *testing.T) {
	t.Parallel()

	interactor, store, _ := newFixture(t, "2026-09-01")
	err := interactor.AdoptPlan(context.Background(), progressdto.AdoptPlanInput{
		Subject:    "linear algebra",
		DailyHours: 2,
		TotalHours: 14,
		Difficulty: "intermediate",
	})
	if err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if store.ledger.StartDate != "2026-09-01" {
		t.Fatalf("start date: got %s", store.ledger.StartDate)
	}

	show, err := interactor.Show(context.Background())
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	if show.Plan == nil || show.Plan.Subject != "linear algebra" || show.Plan.PlannedDays != 7 {
		t.Fatalf("unexpected plan: %+v", show.Plan)
	}
}

func TestResetDiscardsLedgerAndProjection(t *testing.T) {
	t.Parallel()

	interactor, store, projector := newFixture(t, "2026-09-01")
	if _, err := interactor.MarkToday(context.Background()); err != nil {
		t.Fatalf("mark: %v", err)
	}
	if err := interactor.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if len(store.ledger.DailyProgress) != 0 || len(store.ledger.Achievements) != 0 {
		t.Fatalf("ledger not cleared: %+v", store.ledger)
	}
	if len(projector.last.DailyProgress) != 0 {
		t.Fatalf("projection not rebuilt empty")
	}
}

func TestHistoryDefaultsLimit(t *testing.T) {
	t.Parallel()

	interactor, _, projector := newFixture(t, "2026-09-01")
	projector.last = domain.Ledger{DailyProgress: map[string]bool{"2026-09-01": true}}

	days, err := interactor.History(context.Background(), 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(days) != 1 || days[0].Date != "2026-09-01" || !days[0].Completed {
		t.Fatalf("unexpected history: %+v", days)
	}
}

func TestMutateSurfacesStoreFailures(t *testing.T) {
	t.Parallel()

	interactor, store, _ := newFixture(t, "2026-09-01")
	store.saveErr = errors.New("disk full")
	_, err := interactor.MarkToday(context.Background())
	if err == nil || !errors.Is(err, store.saveErr) {
		t.Fatalf("want wrapped save error, got %v", err)
	}
}
