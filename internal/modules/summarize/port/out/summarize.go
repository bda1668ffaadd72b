package out

import (
	"context"

	"studyhub/internal/modules/summarize/domain"
)

// PDFProber inspects a local PDF without uploading it.
type PDFProber interface {
	Probe(ctx context.Context, path string) (domain.PDFInfo, error)
}

type SummarizeAPI interface {
	Upload(ctx context.Context, req domain.UploadRequest) (domain.Result, error)
}
