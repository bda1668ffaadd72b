package out

import (
	"context"
	"net/http"

	"studyhub/internal/modules/motivation/domain"
	motivationout "studyhub/internal/modules/motivation/port/out"
	"studyhub/internal/platform/api"
)

type APIMotivationClient struct {
	client *api.Client
}

func NewAPIMotivationClient(client *api.Client) motivationout.MotivationAPI {
	return &APIMotivationClient{client: client}
}

// wireQuote tolerates both quote payload shapes the backend has shipped:
// the text arrives under either a content or a quote key.
type wireQuote struct {
	Content string `json:"content"`
	Quote   string `json:"quote"`
	Author  string `json:"author"`
}

func (q wireQuote) text() string {
	if q.Content != "" {
		return q.Content
	}
	return q.Quote
}

type wireMotivationResponse struct {
	Motivation struct {
		Quote wireQuote `json:"quote"`
		Tip   struct {
			Tip string `json:"tip"`
		} `json:"tip"`
		Encouragement string `json:"encouragement"`
		MoodAnalysis  *struct {
			DetectedMood    string   `json:"detected_mood"`
			EnergyLevel     string   `json:"energy_level"`
			ConfidenceLevel string   `json:"confidence_level"`
			Suggestions     []string `json:"suggestions"`
		} `json:"mood_analysis"`
	} `json:"motivation"`
}

func (c *APIMotivationClient) Enhanced(ctx context.Context, req domain.Request) (domain.Motivation, error) {
	body := map[string]string{"user_input": req.Mood}
	var resp wireMotivationResponse
	if err := c.client.DoJSON(ctx, http.MethodPost, "/api/enhanced-motivation", body, &resp); err != nil {
		return domain.Motivation{}, err
	}
	motivation := domain.Motivation{
		Quote:         domain.Quote{Text: resp.Motivation.Quote.text(), Author: resp.Motivation.Quote.Author},
		Tip:           domain.Tip{Text: resp.Motivation.Tip.Tip},
		Encouragement: resp.Motivation.Encouragement,
	}
	if analysis := resp.Motivation.MoodAnalysis; analysis != nil {
		motivation.Analysis = &domain.MoodAnalysis{
			DetectedMood:    analysis.DetectedMood,
			EnergyLevel:     analysis.EnergyLevel,
			ConfidenceLevel: analysis.ConfidenceLevel,
			Suggestions:     analysis.Suggestions,
		}
	}
	return motivation, nil
}
