package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	apperrors "studyhub/internal/platform/errors"
)

var validate = validator.New()

// SimplePlanRequest is the minimal planner input: a free-form goal.
type SimplePlanRequest struct {
	Goal string `validate:"required"`
}

func (r SimplePlanRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: a study goal is required", apperrors.ErrValidation)
	}
	return nil
}

// AdvancedPlanRequest carries the full planner form.
type AdvancedPlanRequest struct {
	Subject        string  `validate:"required,min=2"`
	HoursPerDay    float64 `validate:"required,gte=1"`
	TotalDays      int     `validate:"required,gte=1"`
	KnowledgeLevel string  `validate:"required,oneof=beginner intermediate advanced"`
	LearningStyle  string  `validate:"required"`
	Mood           string  `validate:"-"`
}

func (r AdvancedPlanRequest) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	switch errs[0].Field() {
	case "Subject":
		return fmt.Errorf("%w: subject must be at least 2 characters", apperrors.ErrValidation)
	case "HoursPerDay":
		return fmt.Errorf("%w: hours per day must be at least 1", apperrors.ErrValidation)
	case "TotalDays":
		return fmt.Errorf("%w: total days must be at least 1", apperrors.ErrValidation)
	case "KnowledgeLevel":
		return fmt.Errorf("%w: knowledge level must be beginner, intermediate or advanced", apperrors.ErrValidation)
	default:
		return fmt.Errorf("%w: %s is required", apperrors.ErrValidation, errs[0].Field())
	}
}

// SimplePlan is the response to a simple plan request.
type SimplePlan struct {
	Schedule      []string
	FirstResource *PlanResource
}

type PlanResource struct {
	Topic string
	Link  string
}

// StudyPlan is the full advanced planner output.
type StudyPlan struct {
	Subject    string
	TotalHours float64
	DailyHours float64
	Difficulty string
	Schedule   []PlanDay
	Resources  []Resource
	Motivation string
}

type PlanDay struct {
	Day    int
	Date   string
	Hours  float64
	Topics []TopicAllocation
	Goals  []string
}

type TopicAllocation struct {
	Topic string
	Hours float64
}

type Resource struct {
	Title        string
	Description  string
	ResourceType string
	Difficulty   string
	URL          string
}
