package domain

import (
	"errors"
	"strings"
	"testing"

	apperrors "studyhub/internal/platform/errors"
)

func TestSimplePlanRequestValidate(t *testing.T) {
	t.Parallel()

	if err := (SimplePlanRequest{Goal: "learn go"}).Validate(); err != nil {
		t.Fatalf("valid goal: %v", err)
	}
	err := (SimplePlanRequest{}).Validate()
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
}

func TestAdvancedPlanRequestValidate(t *testing.T) {
	t.Parallel()

	valid := AdvancedPlanRequest{
		Subject:        "calculus",
		HoursPerDay:    2,
		TotalDays:      7,
		KnowledgeLevel: "beginner",
		LearningStyle:  "visual",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request: %v", err)
	}

	// Mood is free-form and optional.
	withMood := valid
	withMood.Mood = "tired but determined"
	if err := withMood.Validate(); err != nil {
		t.Fatalf("mood should never fail validation: %v", err)
	}

	tests := []struct {
		name     string
		mutate   func(*AdvancedPlanRequest)
		contains string
	}{
		{name: "short subject", mutate: func(r *AdvancedPlanRequest) { r.Subject = "x" }, contains: "subject"},
		{name: "empty subject", mutate: func(r *AdvancedPlanRequest) { r.Subject = "" }, contains: "subject"},
		{name: "zero hours", mutate: func(r *AdvancedPlanRequest) { r.HoursPerDay = 0 }, contains: "hours per day"},
		{name: "fractional below one", mutate: func(r *AdvancedPlanRequest) { r.HoursPerDay = 0.5 }, contains: "hours per day"},
		{name: "zero days", mutate: func(r *AdvancedPlanRequest) { r.TotalDays = 0 }, contains: "total days"},
		{name: "bad level", mutate: func(r *AdvancedPlanRequest) { r.KnowledgeLevel = "expert" }, contains: "knowledge level"},
		{name: "no style", mutate: func(r *AdvancedPlanRequest) { r.LearningStyle = "" }, contains: "LearningStyle"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := valid
			tc.mutate(&req)
			err := req.Validate()
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.contains) {
				t.Fatalf("message should name the field: %v", err)
			}
		})
	}
}
