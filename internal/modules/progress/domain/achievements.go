package domain

import "time"

type AchievementID string

const (
	AchievementFirstDay    AchievementID = "first-day"
	AchievementThreeStreak AchievementID = "three-streak"
	AchievementWeekWarrior AchievementID = "week-warrior"
	AchievementPerfectWeek AchievementID = "perfect-week"
)

type AchievementInfo struct {
	ID          AchievementID
	Title       string
	Description string
}

// Catalog lists every achievement in unlock-display order.
var Catalog = []AchievementInfo{
	{AchievementFirstDay, "First Day", "Complete your first study day"},
	{AchievementThreeStreak, "On a Roll", "Reach a 3-day streak"},
	{AchievementWeekWarrior, "Week Warrior", "Complete 7 study days in total"},
	{AchievementPerfectWeek, "Perfect Week", "Finish 100% of your plan"},
}

func (id AchievementID) Known() bool {
	for _, info := range Catalog {
		if info.ID == id {
			return true
		}
	}
	return false
}

func (id AchievementID) Info() AchievementInfo {
	for _, info := range Catalog {
		if info.ID == id {
			return info
		}
	}
	return AchievementInfo{ID: id}
}

func (l Ledger) HasAchievement(id AchievementID) bool {
	for _, have := range l.Achievements {
		if have == id {
			return true
		}
	}
	return false
}

// EvaluateAchievements returns the achievements whose predicate is newly
// true against the given snapshot. Pure: predicates are re-checked from
// scratch each call, the caller appends and persists. Unlocks are monotonic;
// nothing here ever removes an id.
func EvaluateAchievements(l Ledger, today time.Time) []AchievementID {
	unlocked := []AchievementID{}
	add := func(id AchievementID, predicate bool) {
		if predicate && !l.HasAchievement(id) {
			unlocked = append(unlocked, id)
		}
	}
	add(AchievementFirstDay, l.CompletedDays() >= 1)
	add(AchievementThreeStreak, l.StreakOn(today) >= 3)
	add(AchievementWeekWarrior, l.CompletedDays() >= 7)
	add(AchievementPerfectWeek, l.CurrentPlan != nil && l.CompletionPercent() == 100)
	return unlocked
}
