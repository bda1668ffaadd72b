package out

import (
	"context"
	"net/http"

	"studyhub/internal/modules/resource/domain"
	resourceout "studyhub/internal/modules/resource/port/out"
	"studyhub/internal/platform/api"
)

type APIResourceClient struct {
	client *api.Client
}

func NewAPIResourceClient(client *api.Client) resourceout.ResourceAPI {
	return &APIResourceClient{client: client}
}

type wireSearchRequest struct {
	Subject      string `json:"subject"`
	ResourceType string `json:"resource_type,omitempty"`
	Limit        int    `json:"limit"`
}

type wireSearchResponse struct {
	Resources []struct {
		Title           string   `json:"title"`
		Description     string   `json:"description"`
		ResourceType    string   `json:"resource_type"`
		Difficulty      string   `json:"difficulty"`
		URL             string   `json:"url"`
		SimilarityScore float64  `json:"similarity_score"`
		Tags            []string `json:"tags"`
	} `json:"resources"`
	SearchFeedback string `json:"search_feedback"`
}

func (c *APIResourceClient) Find(ctx context.Context, req domain.SearchRequest) (domain.SearchResult, error) {
	body := wireSearchRequest{
		Subject:      req.Subject,
		ResourceType: req.ResourceType,
		Limit:        req.Limit,
	}
	var resp wireSearchResponse
	if err := c.client.DoJSON(ctx, http.MethodPost, "/api/find-resources", body, &resp); err != nil {
		return domain.SearchResult{}, err
	}
	result := domain.SearchResult{Feedback: resp.SearchFeedback}
	for _, res := range resp.Resources {
		result.Resources = append(result.Resources, domain.Resource{
			Title:           res.Title,
			Description:     res.Description,
			ResourceType:    res.ResourceType,
			Difficulty:      res.Difficulty,
			URL:             res.URL,
			SimilarityScore: res.SimilarityScore,
			Tags:            res.Tags,
		})
	}
	return result, nil
}
