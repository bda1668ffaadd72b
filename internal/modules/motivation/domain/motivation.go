package domain

import (
	"fmt"
	"strings"

	apperrors "studyhub/internal/platform/errors"
)

type Request struct {
	Mood string
}

func (r Request) Validate() error {
	if strings.TrimSpace(r.Mood) == "" {
		return fmt.Errorf("%w: describe how you are feeling", apperrors.ErrValidation)
	}
	return nil
}

type Quote struct {
	Text   string
	Author string
}

type Tip struct {
	Text string
}

type MoodAnalysis struct {
	DetectedMood    string
	EnergyLevel     string
	ConfidenceLevel string
	Suggestions     []string
}

// Motivation is the enhanced response: quote, study tip, encouragement and
// an optional mood analysis.
type Motivation struct {
	Quote         Quote
	Tip           Tip
	Encouragement string
	Analysis      *MoodAnalysis
}
