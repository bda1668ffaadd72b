package out

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"studyhub/internal/modules/progress/domain"
)

func TestFileLedgerStoreRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "progress.json")
	store := NewFileLedgerStore(path)
	ctx := context.Background()

	ledger := domain.NewLedger()
	today, _ := time.Parse(domain.DateLayout, "2026-09-01")
	if err := ledger.AdoptPlan(domain.PlanSummary{Subject: "go", DailyHours: 2, TotalHours: 10, Difficulty: "beginner"}, today); err != nil {
		t.Fatalf("adopt: %v", err)
	}
	if err := ledger.MarkDate("2026-09-01", true); err != nil {
		t.Fatalf("mark: %v", err)
	}
	ledger.Achievements = append(ledger.Achievements, domain.AchievementFirstDay)

	if err := store.Save(ctx, ledger); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.CurrentPlan == nil || loaded.CurrentPlan.Subject != "go" {
		t.Fatalf("plan lost: %+v", loaded.CurrentPlan)
	}
	if loaded.StartDate != "2026-09-01" || !loaded.DailyProgress["2026-09-01"] {
		t.Fatalf("marks lost: %+v", loaded)
	}
	if !loaded.HasAchievement(domain.AchievementFirstDay) {
		t.Fatalf("achievements lost")
	}
}

func TestFileLedgerStoreMissingFileIsEmptyLedger(t *testing.T) {
	t.Parallel()

	store := NewFileLedgerStore(filepath.Join(t.TempDir(), "progress.json"))
	ledger, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ledger.DailyProgress == nil || len(ledger.DailyProgress) != 0 || ledger.CurrentPlan != nil {
		t.Fatalf("expected fresh ledger, got %+v", ledger)
	}
}

func TestFileLedgerStoreCorruptFileFallsBackToDefaults(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := NewFileLedgerStore(path)
	ledger, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(ledger.DailyProgress) != 0 || ledger.Streak != 0 {
		t.Fatalf("corrupt blob must read as fresh, got %+v", ledger)
	}
}

func TestFileLedgerStoreNormalizesPartialBlob(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "progress.json")
	blob := `{"streak": -2, "achievements": ["first-day", "bogus", "first-day"]}`
	if err := os.WriteFile(path, []byte(blob), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	store := NewFileLedgerStore(path)
	ledger, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if ledger.Streak != 0 {
		t.Fatalf("streak not clamped: %d", ledger.Streak)
	}
	if len(ledger.Achievements) != 1 || ledger.Achievements[0] != domain.AchievementFirstDay {
		t.Fatalf("achievements not repaired: %v", ledger.Achievements)
	}
	if ledger.DailyProgress == nil {
		t.Fatalf("progress map not initialized")
	}
}
