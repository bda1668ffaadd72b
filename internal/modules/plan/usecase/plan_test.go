package usecase

import (
	"context"
	"errors"
	"testing"

	"studyhub/internal/modules/plan/domain"
	"studyhub/internal/modules/plan/dto"
	progressdto "studyhub/internal/modules/progress/dto"
	apperrors "studyhub/internal/platform/errors"
)

type fakePlannerAPI struct {
	simple        domain.SimplePlan
	advanced      domain.StudyPlan
	subjects      []string
	err           error
	simpleCalls   int
	advancedCalls int
}

func (f *fakePlannerAPI) Simple(ctx context.Context, req domain.SimplePlanRequest) (domain.SimplePlan, error) {
	f.simpleCalls++
	if f.err != nil {
		return domain.SimplePlan{}, f.err
	}
	return f.simple, nil
}

func (f *fakePlannerAPI) Advanced(ctx context.Context, req domain.AdvancedPlanRequest) (domain.StudyPlan, error) {
	f.advancedCalls++
	if f.err != nil {
		return domain.StudyPlan{}, f.err
	}
	return f.advanced, nil
}

func (f *fakePlannerAPI) Subjects(ctx context.Context) ([]string, error) {
	return f.subjects, f.err
}

type fakeProgress struct {
	adopted  []progressdto.AdoptPlanInput
	adoptErr error
}

func (f *fakeProgress) AdoptPlan(ctx context.Context, input progressdto.AdoptPlanInput) error {
	f.adopted = append(f.adopted, input)
	return f.adoptErr
}

func (f *fakeProgress) MarkToday(ctx context.Context) (progressdto.MarkOutput, error) {
	return progressdto.MarkOutput{}, nil
}

func (f *fakeProgress) MarkDate(ctx context.Context, input progressdto.MarkInput) (progressdto.MarkOutput, error) {
	return progressdto.MarkOutput{}, nil
}

func (f *fakeProgress) Show(ctx context.Context) (progressdto.LedgerOutput, error) {
	return progressdto.LedgerOutput{}, nil
}

func (f *fakeProgress) History(ctx context.Context, limit int) ([]progressdto.DayOutput, error) {
	return nil, nil
}

func (f *fakeProgress) Reset(ctx context.Context) error {
	return nil
}

func validAdvancedInput() dto.AdvancedPlanInput {
	return dto.AdvancedPlanInput{
		Subject:        "calculus",
		HoursPerDay:    2,
		TotalDays:      7,
		KnowledgeLevel: "beginner",
		LearningStyle:  "visual",
	}
}

func TestSimpleValidatesBeforeNetwork(t *testing.T) {
	t.Parallel()

	api := &fakePlannerAPI{}
	interactor := NewInteractor(api, &fakeProgress{})

	_, err := interactor.Simple(context.Background(), dto.SimplePlanInput{Goal: ""})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if api.simpleCalls != 0 {
		t.Fatalf("invalid goal must not reach the backend")
	}
}

func TestSimplePlanCarriesFirstResource(t *testing.T) {
	t.Parallel()

	api := &fakePlannerAPI{simple: domain.SimplePlan{
		Schedule:      []string{"day 1: basics", "day 2: practice"},
		FirstResource: &domain.PlanResource{Topic: "Basics", Link: "https://example.com/basics"},
	}}
	interactor := NewInteractor(api, &fakeProgress{})

	out, err := interactor.Simple(context.Background(), dto.SimplePlanInput{Goal: "learn go"})
	if err != nil {
		t.Fatalf("simple: %v", err)
	}
	if len(out.Schedule) != 2 || out.ResourceTopic != "Basics" || out.ResourceLink != "https://example.com/basics" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestAdvancedAdoptsPlanExactlyOnce(t *testing.T) {
	t.Parallel()

	api := &fakePlannerAPI{advanced: domain.StudyPlan{
		Subject:    "calculus",
		TotalHours: 14,
		DailyHours: 2,
		Difficulty: "beginner",
		Schedule: []domain.PlanDay{{
			Day: 1, Date: "2026-09-01", Hours: 2,
			Topics: []domain.TopicAllocation{{Topic: "limits", Hours: 2}},
			Goals:  []string{"understand limits"},
		}},
		Motivation: "keep going",
	}}
	progress := &fakeProgress{}
	interactor := NewInteractor(api, progress)

	out, err := interactor.Advanced(context.Background(), validAdvancedInput())
	if err != nil {
		t.Fatalf("advanced: %v", err)
	}
	if len(progress.adopted) != 1 {
		t.Fatalf("plan must be adopted exactly once, got %d", len(progress.adopted))
	}
	adopted := progress.adopted[0]
	if adopted.Subject != "calculus" || adopted.DailyHours != 2 || adopted.TotalHours != 14 || adopted.Difficulty != "beginner" {
		t.Fatalf("unexpected adoption: %+v", adopted)
	}
	if out.Subject != "calculus" || len(out.Schedule) != 1 || out.Schedule[0].Topics[0].Topic != "limits" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestAdvancedValidationSkipsNetworkAndAdoption(t *testing.T) {
	t.Parallel()

	api := &fakePlannerAPI{}
	progress := &fakeProgress{}
	interactor := NewInteractor(api, progress)

	input := validAdvancedInput()
	input.KnowledgeLevel = "wizard"
	_, err := interactor.Advanced(context.Background(), input)
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Fatalf("want ErrValidation, got %v", err)
	}
	if api.advancedCalls != 0 || len(progress.adopted) != 0 {
		t.Fatalf("invalid input must not reach the backend or the ledger")
	}
}

func TestAdvancedBackendFailureSkipsAdoption(t *testing.T) {
	t.Parallel()

	api := &fakePlannerAPI{err: apperrors.ErrBackendUnreachable}
	progress := &fakeProgress{}
	interactor := NewInteractor(api, progress)

	_, err := interactor.Advanced(context.Background(), validAdvancedInput())
	if !errors.Is(err, apperrors.ErrBackendUnreachable) {
		t.Fatalf("want ErrBackendUnreachable, got %v", err)
	}
	if len(progress.adopted) != 0 {
		t.Fatalf("failed generation must not be adopted")
	}
}

func TestAdvancedAdoptionFailureFailsTheRequest(t *testing.T) {
	t.Parallel()

	api := &fakePlannerAPI{advanced: domain.StudyPlan{Subject: "calculus", DailyHours: 2, TotalHours: 14}}
	progress := &fakeProgress{adoptErr: errors.New("disk full")}
	interactor := NewInteractor(api, progress)

	_, err := interactor.Advanced(context.Background(), validAdvancedInput())
	if err == nil || !errors.Is(err, progress.adoptErr) {
		t.Fatalf("want wrapped adoption error, got %v", err)
	}
}

func TestSubjectsPassThrough(t *testing.T) {
	t.Parallel()

	api := &fakePlannerAPI{subjects: []string{"math", "physics"}}
	interactor := NewInteractor(api, &fakeProgress{})

	subjects, err := interactor.Subjects(context.Background())
	if err != nil {
		t.Fatalf("subjects: %v", err)
	}
	if len(subjects) != 2 || subjects[0] != "math" {
		t.Fatalf("unexpected subjects: %v", subjects)
	}
}
