package dto

type SimplePlanInput struct {
	Goal string
}

type SimplePlanOutput struct {
	Schedule      []string
	ResourceTopic string
	ResourceLink  string
}

type AdvancedPlanInput struct {
	Subject        string
	HoursPerDay    float64
	TotalDays      int
	KnowledgeLevel string
	LearningStyle  string
	Mood           string
}

type AdvancedPlanOutput struct {
	Subject    string
	TotalHours float64
	DailyHours float64
	Difficulty string
	Schedule   []DayOutput
	Resources  []ResourceOutput
	Motivation string
}

type DayOutput struct {
	Day    int
	Date   string
	Hours  float64
	Topics []TopicOutput
	Goals  []string
}

type TopicOutput struct {
	Topic string
	Hours float64
}

type ResourceOutput struct {
	Title        string
	Description  string
	ResourceType string
	Difficulty   string
	URL          string
}
