package out

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"studyhub/internal/modules/plan/domain"
	planout "studyhub/internal/modules/plan/port/out"
	"studyhub/internal/platform/api"
)

type APIPlannerClient struct {
	client *api.Client
}

func NewAPIPlannerClient(client *api.Client) planout.PlannerAPI {
	return &APIPlannerClient{client: client}
}

type wireSimpleResponse struct {
	Schedule      []string `json:"schedule"`
	FirstResource *struct {
		Topic string `json:"topic"`
		Link  string `json:"link"`
	} `json:"first_resource"`
}

func (c *APIPlannerClient) Simple(ctx context.Context, req domain.SimplePlanRequest) (domain.SimplePlan, error) {
	body := map[string]string{"goal": req.Goal}
	var resp wireSimpleResponse
	if err := c.client.DoJSON(ctx, http.MethodPost, "/api/generate-plan", body, &resp); err != nil {
		return domain.SimplePlan{}, err
	}
	plan := domain.SimplePlan{Schedule: resp.Schedule}
	if resp.FirstResource != nil {
		plan.FirstResource = &domain.PlanResource{
			Topic: resp.FirstResource.Topic,
			Link:  resp.FirstResource.Link,
		}
	}
	return plan, nil
}

type wireAdvancedRequest struct {
	Subject              string  `json:"subject"`
	AvailableHoursPerDay float64 `json:"available_hours_per_day"`
	TotalDays            int     `json:"total_days"`
	KnowledgeLevel       string  `json:"knowledge_level"`
	LearningStyle        string  `json:"learning_style"`
	UserMood             string  `json:"user_mood,omitempty"`
}

type wireStudyPlan struct {
	Subject    string  `json:"subject"`
	TotalHours float64 `json:"total_hours"`
	DailyHours float64 `json:"daily_hours"`
	Difficulty string  `json:"difficulty"`
	Schedule   []struct {
		Day    int     `json:"day"`
		Date   string  `json:"date"`
		Hours  float64 `json:"hours"`
		Topics []struct {
			Topic string  `json:"topic"`
			Hours float64 `json:"hours"`
		} `json:"topics"`
		Goals []string `json:"goals"`
	} `json:"schedule"`
	Resources []struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ResourceType string `json:"resource_type"`
		Difficulty   string `json:"difficulty"`
		URL          string `json:"url"`
	} `json:"resources"`
	Motivation string `json:"motivation"`
}

func (c *APIPlannerClient) Advanced(ctx context.Context, req domain.AdvancedPlanRequest) (domain.StudyPlan, error) {
	body := wireAdvancedRequest{
		Subject:              req.Subject,
		AvailableHoursPerDay: req.HoursPerDay,
		TotalDays:            req.TotalDays,
		KnowledgeLevel:       req.KnowledgeLevel,
		LearningStyle:        req.LearningStyle,
		UserMood:             req.Mood,
	}
	var resp struct {
		StudyPlan *wireStudyPlan `json:"study_plan"`
	}
	if err := c.client.DoJSON(ctx, http.MethodPost, "/api/planner/generate-advanced", body, &resp); err != nil {
		return domain.StudyPlan{}, err
	}
	if resp.StudyPlan == nil {
		return domain.StudyPlan{}, fmt.Errorf("planner response missing study_plan")
	}
	return studyPlanFrom(*resp.StudyPlan), nil
}

// Subjects tolerates both response shapes the backend has shipped: a bare
// array and an object with a subjects key.
func (c *APIPlannerClient) Subjects(ctx context.Context) ([]string, error) {
	var raw json.RawMessage
	if err := c.client.DoJSON(ctx, http.MethodGet, "/api/subjects", nil, &raw); err != nil {
		return nil, err
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	var wrapped struct {
		Subjects []string `json:"subjects"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("decode subjects response: %w", err)
	}
	return wrapped.Subjects, nil
}

func studyPlanFrom(wire wireStudyPlan) domain.StudyPlan {
	plan := domain.StudyPlan{
		Subject:    wire.Subject,
		TotalHours: wire.TotalHours,
		DailyHours: wire.DailyHours,
		Difficulty: wire.Difficulty,
		Motivation: wire.Motivation,
	}
	for _, day := range wire.Schedule {
		d := domain.PlanDay{Day: day.Day, Date: day.Date, Hours: day.Hours, Goals: day.Goals}
		for _, topic := range day.Topics {
			d.Topics = append(d.Topics, domain.TopicAllocation{Topic: topic.Topic, Hours: topic.Hours})
		}
		plan.Schedule = append(plan.Schedule, d)
	}
	for _, res := range wire.Resources {
		plan.Resources = append(plan.Resources, domain.Resource{
			Title:        res.Title,
			Description:  res.Description,
			ResourceType: res.ResourceType,
			Difficulty:   res.Difficulty,
			URL:          res.URL,
		})
	}
	return plan
}
