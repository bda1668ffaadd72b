package usecase

import (
	"context"
	"fmt"

	"studyhub/internal/modules/plan/domain"
	"studyhub/internal/modules/plan/dto"
	planout "studyhub/internal/modules/plan/port/out"
	progressdto "studyhub/internal/modules/progress/dto"
	progressin "studyhub/internal/modules/progress/port/in"
)

type Interactor struct {
	api      planout.PlannerAPI
	progress progressin.Usecase
}

func NewInteractor(api planout.PlannerAPI, progress progressin.Usecase) *Interactor {
	return &Interactor{api: api, progress: progress}
}

func (i *Interactor) Simple(ctx context.Context, input dto.SimplePlanInput) (dto.SimplePlanOutput, error) {
	req := domain.SimplePlanRequest{Goal: input.Goal}
	if err := req.Validate(); err != nil {
		return dto.SimplePlanOutput{}, err
	}
	plan, err := i.api.Simple(ctx, req)
	if err != nil {
		return dto.SimplePlanOutput{}, err
	}
	out := dto.SimplePlanOutput{Schedule: plan.Schedule}
	if plan.FirstResource != nil {
		out.ResourceTopic = plan.FirstResource.Topic
		out.ResourceLink = plan.FirstResource.Link
	}
	return out, nil
}

func (i *Interactor) Advanced(ctx context.Context, input dto.AdvancedPlanInput) (dto.AdvancedPlanOutput, error) {
	req := domain.AdvancedPlanRequest{
		Subject:        input.Subject,
		HoursPerDay:    input.HoursPerDay,
		TotalDays:      input.TotalDays,
		KnowledgeLevel: input.KnowledgeLevel,
		LearningStyle:  input.LearningStyle,
		Mood:           input.Mood,
	}
	if err := req.Validate(); err != nil {
		return dto.AdvancedPlanOutput{}, err
	}
	plan, err := i.api.Advanced(ctx, req)
	if err != nil {
		return dto.AdvancedPlanOutput{}, err
	}
	adopt := progressdto.AdoptPlanInput{
		Subject:    plan.Subject,
		DailyHours: plan.DailyHours,
		TotalHours: plan.TotalHours,
		Difficulty: plan.Difficulty,
	}
	if err := i.progress.AdoptPlan(ctx, adopt); err != nil {
		return dto.AdvancedPlanOutput{}, fmt.Errorf("record plan in progress ledger: %w", err)
	}
	return advancedOutput(plan), nil
}

func (i *Interactor) Subjects(ctx context.Context) ([]string, error) {
	return i.api.Subjects(ctx)
}

func advancedOutput(plan domain.StudyPlan) dto.AdvancedPlanOutput {
	out := dto.AdvancedPlanOutput{
		Subject:    plan.Subject,
		TotalHours: plan.TotalHours,
		DailyHours: plan.DailyHours,
		Difficulty: plan.Difficulty,
		Motivation: plan.Motivation,
	}
	for _, day := range plan.Schedule {
		d := dto.DayOutput{Day: day.Day, Date: day.Date, Hours: day.Hours, Goals: day.Goals}
		for _, topic := range day.Topics {
			d.Topics = append(d.Topics, dto.TopicOutput{Topic: topic.Topic, Hours: topic.Hours})
		}
		out.Schedule = append(out.Schedule, d)
	}
	for _, res := range plan.Resources {
		out.Resources = append(out.Resources, dto.ResourceOutput{
			Title:        res.Title,
			Description:  res.Description,
			ResourceType: res.ResourceType,
			Difficulty:   res.Difficulty,
			URL:          res.URL,
		})
	}
	return out
}
