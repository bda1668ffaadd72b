package out

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"studyhub/internal/modules/summarize/domain"
	summarizeout "studyhub/internal/modules/summarize/port/out"
	"studyhub/internal/platform/api"
)

type APISummarizeClient struct {
	client *api.Client
}

func NewAPISummarizeClient(client *api.Client) summarizeout.SummarizeAPI {
	return &APISummarizeClient{client: client}
}

type wireSummarizeResponse struct {
	Type     string `json:"type"`
	Filename string `json:"filename"`
	Summary  string `json:"summary"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func (c *APISummarizeClient) Upload(ctx context.Context, req domain.UploadRequest) (domain.Result, error) {
	file, err := os.Open(req.Path)
	if err != nil {
		return domain.Result{}, fmt.Errorf("open document: %w", err)
	}
	defer func() { _ = file.Close() }()

	var resp wireSummarizeResponse
	form := func(w *multipart.Writer) error {
		part, err := w.CreateFormFile("file", filepath.Base(req.Path))
		if err != nil {
			return fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, file); err != nil {
			return fmt.Errorf("copy document: %w", err)
		}
		if req.Question != "" {
			if err := w.WriteField("question", req.Question); err != nil {
				return fmt.Errorf("write question field: %w", err)
			}
		}
		return nil
	}
	if err := c.client.DoMultipart(ctx, "/api/summarize-document", form, &resp); err != nil {
		return domain.Result{}, err
	}

	result := domain.Result{
		Type:     resp.Type,
		Filename: resp.Filename,
		Summary:  resp.Summary,
		Question: resp.Question,
		Answer:   resp.Answer,
	}
	if err := result.Validate(); err != nil {
		return domain.Result{}, fmt.Errorf("decode summarize response: %w", err)
	}
	return result, nil
}
