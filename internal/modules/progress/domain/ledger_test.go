package domain

import (
	"testing"
	"time"
)

func day(s string) time.Time {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestPlanSummaryPlannedDays(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		plan  PlanSummary
		wantN int
	}{
		{name: "exact", plan: PlanSummary{DailyHours: 2, TotalHours: 14}, wantN: 7},
		{name: "rounds up", plan: PlanSummary{DailyHours: 3, TotalHours: 10}, wantN: 4},
		{name: "zero daily", plan: PlanSummary{DailyHours: 0, TotalHours: 10}, wantN: 0},
		{name: "zero total", plan: PlanSummary{DailyHours: 2, TotalHours: 0}, wantN: 0},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.plan.PlannedDays(); got != tc.wantN {
				t.Fatalf("planned days: want %d got %d", tc.wantN, got)
			}
		})
	}
}

func TestStreakRequiresToday(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	for _, d := range []string{"2026-08-29", "2026-08-30", "2026-08-31"} {
		if err := ledger.MarkDate(d, true); err != nil {
			t.Fatalf("mark %s: %v", d, err)
		}
	}

	if got := ledger.StreakOn(day("2026-08-31")); got != 3 {
		t.Fatalf("streak ending today: want 3 got %d", got)
	}
	// A run that stopped yesterday counts for nothing today.
	if got := ledger.StreakOn(day("2026-09-01")); got != 0 {
		t.Fatalf("streak with unmarked today: want 0 got %d", got)
	}

	if err := ledger.MarkDate("2026-09-01", true); err != nil {
		t.Fatalf("mark today: %v", err)
	}
	if got := ledger.StreakOn(day("2026-09-01")); got != 4 {
		t.Fatalf("streak after marking today: want 4 got %d", got)
	}
}

func TestStreakBreaksOnGap(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	for _, d := range []string{"2026-08-27", "2026-08-28", "2026-08-31", "2026-09-01"} {
		if err := ledger.MarkDate(d, true); err != nil {
			t.Fatalf("mark %s: %v", d, err)
		}
	}
	if got := ledger.StreakOn(day("2026-09-01")); got != 2 {
		t.Fatalf("gap should cap streak at 2, got %d", got)
	}
}

func TestMarkDateValidationAndIdempotence(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	if err := ledger.MarkDate("01/09/2026", true); err == nil {
		t.Fatalf("expected error for malformed date")
	}

	for i := 0; i < 3; i++ {
		if err := ledger.MarkDate("2026-09-01", true); err != nil {
			t.Fatalf("mark: %v", err)
		}
	}
	if got := ledger.CompletedDays(); got != 1 {
		t.Fatalf("re-marking must not inflate completed days, got %d", got)
	}

	if err := ledger.MarkDate("2026-09-01", false); err != nil {
		t.Fatalf("unmark: %v", err)
	}
	if got := ledger.CompletedDays(); got != 0 {
		t.Fatalf("unmark should clear the day, got %d", got)
	}
}

func TestCompletionPercentBounds(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	if got := ledger.CompletionPercent(); got != 0 {
		t.Fatalf("no plan: want 0%% got %d%%", got)
	}

	if err := ledger.AdoptPlan(PlanSummary{Subject: "rust", DailyHours: 2, TotalHours: 8}, day("2026-09-01")); err != nil {
		t.Fatalf("adopt: %v", err)
	}
	for i, d := range []string{"2026-09-01", "2026-09-02", "2026-09-03"} {
		if err := ledger.MarkDate(d, true); err != nil {
			t.Fatalf("mark %d: %v", i, err)
		}
	}
	if got := ledger.CompletionPercent(); got != 75 {
		t.Fatalf("3 of 4 planned days: want 75%% got %d%%", got)
	}

	// Marking beyond the planned window clamps rather than overflowing.
	for _, d := range []string{"2026-09-04", "2026-09-05", "2026-09-06"} {
		if err := ledger.MarkDate(d, true); err != nil {
			t.Fatalf("mark %s: %v", d, err)
		}
	}
	if got := ledger.CompletionPercent(); got != 100 {
		t.Fatalf("overshoot must clamp to 100%%, got %d%%", got)
	}
}

func TestAdoptPlanPreservesHistory(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	if err := ledger.AdoptPlan(PlanSummary{Subject: "go", DailyHours: 1, TotalHours: 5}, day("2026-08-20")); err != nil {
		t.Fatalf("first adopt: %v", err)
	}
	if ledger.StartDate != "2026-08-20" {
		t.Fatalf("start date: got %s", ledger.StartDate)
	}
	if err := ledger.MarkDate("2026-08-20", true); err != nil {
		t.Fatalf("mark: %v", err)
	}

	if err := ledger.AdoptPlan(PlanSummary{Subject: "sql", DailyHours: 2, TotalHours: 6}, day("2026-09-01")); err != nil {
		t.Fatalf("second adopt: %v", err)
	}
	if ledger.StartDate != "2026-08-20" {
		t.Fatalf("adopting a new plan must keep the open window, got %s", ledger.StartDate)
	}
	if !ledger.DailyProgress["2026-08-20"] {
		t.Fatalf("history lost on plan swap")
	}
	if ledger.CurrentPlan.Subject != "sql" {
		t.Fatalf("plan not replaced: %s", ledger.CurrentPlan.Subject)
	}
}

func TestAdoptPlanRejectsInvalid(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	if err := ledger.AdoptPlan(PlanSummary{Subject: ""}, day("2026-09-01")); err == nil {
		t.Fatalf("expected error for empty subject")
	}
	if err := ledger.AdoptPlan(PlanSummary{Subject: "go", DailyHours: -1}, day("2026-09-01")); err == nil {
		t.Fatalf("expected error for negative hours")
	}
}

func TestNormalizeRepairsStoredBlob(t *testing.T) {
	t.Parallel()

	ledger := Ledger{
		DailyProgress: nil,
		Streak:        -4,
		Achievements: []AchievementID{
			AchievementFirstDay,
			"made-up",
			AchievementFirstDay,
			AchievementWeekWarrior,
		},
	}
	ledger.Normalize()

	if ledger.DailyProgress == nil {
		t.Fatalf("nil progress map must be replaced")
	}
	if ledger.Streak != 0 {
		t.Fatalf("negative streak must clamp to 0, got %d", ledger.Streak)
	}
	want := []AchievementID{AchievementFirstDay, AchievementWeekWarrior}
	if len(ledger.Achievements) != len(want) {
		t.Fatalf("achievements: want %v got %v", want, ledger.Achievements)
	}
	for i := range want {
		if ledger.Achievements[i] != want[i] {
			t.Fatalf("achievements: want %v got %v", want, ledger.Achievements)
		}
	}
}

func TestResetClearsEverything(t *testing.T) {
	t.Parallel()

	ledger := NewLedger()
	_ = ledger.AdoptPlan(PlanSummary{Subject: "go", DailyHours: 1, TotalHours: 3}, day("2026-09-01"))
	_ = ledger.MarkDate("2026-09-01", true)
	ledger.Achievements = append(ledger.Achievements, AchievementFirstDay)

	ledger.Reset()

	if ledger.CurrentPlan != nil || ledger.StartDate != "" {
		t.Fatalf("plan survived reset")
	}
	if len(ledger.DailyProgress) != 0 || len(ledger.Achievements) != 0 {
		t.Fatalf("history survived reset")
	}
}
