package dto

type AdoptPlanInput struct {
	Subject    string
	DailyHours float64
	TotalHours float64
	Difficulty string
}

type MarkInput struct {
	Date      string
	Completed bool
}

type MarkOutput struct {
	Date              string
	Completed         bool
	Streak            int
	CompletionPercent int
	NewAchievements   []AchievementOutput
}

type AchievementOutput struct {
	ID          string
	Title       string
	Description string
}

type PlanOutput struct {
	Subject     string
	DailyHours  float64
	TotalHours  float64
	Difficulty  string
	PlannedDays int
}

type LedgerOutput struct {
	Plan              *PlanOutput
	StartDate         string
	CompletedDays     int
	Streak            int
	CompletionPercent int
	Achievements      []AchievementOutput
}

type DayOutput struct {
	Date      string
	Completed bool
}
