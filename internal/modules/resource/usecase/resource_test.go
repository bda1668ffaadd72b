package usecase

import (
	"context"
	"errors"
	"testing"

	moderationdto "studyhub/internal/modules/moderation/dto"
	"studyhub/internal/modules/resource/domain"
	"studyhub/internal/modules/resource/dto"
	apperrors "studyhub/internal/platform/errors"
)

type fakeResourceAPI struct {
	result domain.SearchResult
	err    error
	calls  []domain.SearchRequest
}

func (f *fakeResourceAPI) Find(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	f.calls = append(f.calls, req)
	if f.err != nil {
		return domain.SearchResult{}, f.err
	}
	return f.result, nil
}

type fakeModeration struct {
	decision moderationdto.DecisionOutput
	err      error
	checked  []string
}

func (f *fakeModeration) Check(ctx context.Context, text string) (moderationdto.DecisionOutput, error) {
	f.checked = append(f.checked, text)
	return f.decision, f.err
}

func (f *fakeModeration) Doctor(ctx context.Context) ([]moderationdto.DoctorResult, error) {
	return nil, nil
}

func allowAll() *fakeModeration {
	return &fakeModeration{decision: moderationdto.DecisionOutput{Allowed: true}}
}

func TestFindAppliesDefaultLimit(t *testing.T) {
	t.Parallel()

	api := &fakeResourceAPI{result: domain.SearchResult{
		Resources: []domain.Resource{{Title: "Calc 101", URL: "https://example.com", SimilarityScore: 0.91, Tags: []string{"math"}}},
		Feedback:  "showing top matches",
	}}
	interactor := NewInteractor(api, allowAll())

	out, err := interactor.Find(context.Background(), dto.SearchInput{Subject: "calculus"})
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(api.calls) != 1 || api.calls[0].Limit != domain.DefaultLimit {
		t.Fatalf("default limit not applied: %+v", api.calls)
	}
	if len(out.Resources) != 1 || out.Resources[0].SimilarityScore != 0.91 || out.Feedback != "showing top matches" {
		t.Fatalf("unexpected output: %+v", out)
	}
}

func TestFindValidatesBeforeModeration(t *testing.T) {
	t.Parallel()

	moderation := allowAll()
	interactor := NewInteractor(&fakeResourceAPI{}, moderation)

	tests := []struct {
		name  string
		input dto.SearchInput
	}{
		{name: "short subject", input: dto.SearchInput{Subject: "x"}},
		{name: "empty subject", input: dto.SearchInput{Subject: ""}},
		{name: "limit too high", input: dto.SearchInput{Subject: "calculus", Limit: 50}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := interactor.Find(context.Background(), tc.input)
			if !errors.Is(err, apperrors.ErrValidation) {
				t.Fatalf("want ErrValidation, got %v", err)
			}
		})
	}
	if len(moderation.checked) != 0 {
		t.Fatalf("invalid input must not reach the classifier: %v", moderation.checked)
	}
}

func TestFindBlockedSubjectNeverReachesBackend(t *testing.T) {
	t.Parallel()

	api := &fakeResourceAPI{}
	moderation := &fakeModeration{decision: moderationdto.DecisionOutput{
		Allowed:    false,
		Category:   "weapons",
		Suggestion: "Try a subject like engineering or materials science instead.",
	}}
	interactor := NewInteractor(api, moderation)

	_, err := interactor.Find(context.Background(), dto.SearchInput{Subject: "explosives"})
	if !errors.Is(err, apperrors.ErrContentBlocked) {
		t.Fatalf("want ErrContentBlocked, got %v", err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("blocked subject must never reach the backend")
	}
	if len(moderation.checked) != 1 || moderation.checked[0] != "explosives" {
		t.Fatalf("classifier saw %v", moderation.checked)
	}
}

func TestFindClassifierFailureFailsClosed(t *testing.T) {
	t.Parallel()

	api := &fakeResourceAPI{}
	moderation := &fakeModeration{err: errors.New("plugin crashed")}
	interactor := NewInteractor(api, moderation)

	_, err := interactor.Find(context.Background(), dto.SearchInput{Subject: "calculus"})
	if err == nil || !errors.Is(err, moderation.err) {
		t.Fatalf("want wrapped classifier error, got %v", err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("classifier failure must not fall through to the backend")
	}
}
