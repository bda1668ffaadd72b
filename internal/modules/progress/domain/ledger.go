package domain

import (
	"fmt"
	"math"
	"time"
)

// DateLayout is the calendar-day key format used throughout the ledger.
const DateLayout = "2006-01-02"

// PlanSummary is the slice of a generated study plan the ledger keeps for
// completion accounting.
type PlanSummary struct {
	Subject    string  `json:"subject"`
	DailyHours float64 `json:"daily_hours"`
	TotalHours float64 `json:"total_hours"`
	Difficulty string  `json:"difficulty"`
}

func (p PlanSummary) Validate() error {
	if p.Subject == "" {
		return fmt.Errorf("plan subject is required")
	}
	if p.DailyHours < 0 || p.TotalHours < 0 {
		return fmt.Errorf("plan hours must be non-negative")
	}
	return nil
}

// PlannedDays is ceil(total/daily); zero when the plan cannot be scheduled.
func (p PlanSummary) PlannedDays() int {
	if p.DailyHours <= 0 || p.TotalHours <= 0 {
		return 0
	}
	return int(math.Ceil(p.TotalHours / p.DailyHours))
}

// Ledger is the one persisted progress record: active plan, per-day
// completion marks, cached streak, and unlocked achievements. Streak and
// completion are always recomputed from DailyProgress, never patched
// incrementally, so direct edits to the stored blob self-correct.
type Ledger struct {
	CurrentPlan   *PlanSummary    `json:"current_plan,omitempty"`
	StartDate     string          `json:"start_date,omitempty"`
	DailyProgress map[string]bool `json:"daily_progress"`
	Streak        int             `json:"streak"`
	Achievements  []AchievementID `json:"achievements"`
}

func NewLedger() Ledger {
	return Ledger{
		DailyProgress: map[string]bool{},
		Achievements:  []AchievementID{},
	}
}

// Normalize repairs a ledger loaded from storage: older or partial blobs get
// defaults instead of crashing startup, unknown achievement ids are dropped,
// duplicates collapse.
func (l *Ledger) Normalize() {
	if l.DailyProgress == nil {
		l.DailyProgress = map[string]bool{}
	}
	seen := map[AchievementID]bool{}
	kept := make([]AchievementID, 0, len(l.Achievements))
	for _, id := range l.Achievements {
		if !id.Known() || seen[id] {
			continue
		}
		seen[id] = true
		kept = append(kept, id)
	}
	l.Achievements = kept
	if l.Streak < 0 {
		l.Streak = 0
	}
}

// AdoptPlan replaces the current plan. History is preserved when a tracking
// window is already open; only an explicit Reset clears it.
func (l *Ledger) AdoptPlan(plan PlanSummary, today time.Time) error {
	if err := plan.Validate(); err != nil {
		return err
	}
	l.CurrentPlan = &plan
	if l.StartDate == "" {
		l.StartDate = DateKey(today)
		l.DailyProgress = map[string]bool{}
	}
	return nil
}

// MarkDate sets or clears the completion flag for one calendar day.
// Re-marking an already-set value is a no-op in effect.
func (l *Ledger) MarkDate(date string, completed bool) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("date must be %s: %w", DateLayout, err)
	}
	l.DailyProgress[date] = completed
	return nil
}

func (l Ledger) CompletedDays() int {
	count := 0
	for _, done := range l.DailyProgress {
		if done {
			count++
		}
	}
	return count
}

// StreakOn walks backward day by day from today and counts consecutive
// completed days. The chain must include today: an unmarked today means zero
// regardless of how long the earlier run is.
func (l Ledger) StreakOn(today time.Time) int {
	streak := 0
	day := today
	for l.DailyProgress[DateKey(day)] {
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak
}

// CompletionPercent is completed days over planned days, rounded, clamped to
// [0,100]. No plan, or a plan with zero daily hours, reads as 0 rather than
// dividing by zero.
func (l Ledger) CompletionPercent() int {
	if l.CurrentPlan == nil {
		return 0
	}
	planned := l.CurrentPlan.PlannedDays()
	if planned == 0 {
		return 0
	}
	pct := int(math.Round(100 * float64(l.CompletedDays()) / float64(planned)))
	if pct > 100 {
		pct = 100
	}
	if pct < 0 {
		pct = 0
	}
	return pct
}

// Reset returns the ledger to never-used defaults. Irreversible.
func (l *Ledger) Reset() {
	*l = NewLedger()
}

func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// DayRecord is one projected calendar-day mark.
type DayRecord struct {
	Date      string
	Completed bool
}
