package dto

type MotivationInput struct {
	Mood string
}

type MotivationOutput struct {
	QuoteText     string
	QuoteAuthor   string
	Tip           string
	Encouragement string
	Analysis      *AnalysisOutput
}

type AnalysisOutput struct {
	DetectedMood    string
	EnergyLevel     string
	ConfidenceLevel string
	Suggestions     []string
}
