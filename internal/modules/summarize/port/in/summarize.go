package in

import (
	"context"

	"studyhub/internal/modules/summarize/dto"
)

type Usecase interface {
	// Upload sends a document for summarization, or question answering when
	// a question is given. PDFs are probed locally first; unreadable or
	// image-only files fail before any upload.
	Upload(ctx context.Context, input dto.UploadInput) (dto.ResultOutput, error)
}
