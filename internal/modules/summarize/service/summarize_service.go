package service

import (
	"context"
	"fmt"
	"path/filepath"

	"studyhub/internal/modules/summarize/domain"
	summarizeout "studyhub/internal/modules/summarize/port/out"
	apperrors "studyhub/internal/platform/errors"
)

type SummarizeService struct {
	prober summarizeout.PDFProber
	api    summarizeout.SummarizeAPI
}

func NewSummarizeService(prober summarizeout.PDFProber, api summarizeout.SummarizeAPI) *SummarizeService {
	return &SummarizeService{prober: prober, api: api}
}

func (s *SummarizeService) Upload(ctx context.Context, req domain.UploadRequest) (domain.Result, error) {
	if err := req.Validate(); err != nil {
		return domain.Result{}, err
	}
	if req.IsPDF() && s.prober != nil {
		info, err := s.prober.Probe(ctx, req.Path)
		if err != nil {
			return domain.Result{}, fmt.Errorf("%w: cannot read %s as a PDF: %v",
				apperrors.ErrValidation, filepath.Base(req.Path), err)
		}
		if info.Pages == 0 {
			return domain.Result{}, fmt.Errorf("%w: %s has no pages",
				apperrors.ErrValidation, filepath.Base(req.Path))
		}
		if !info.HasText {
			return domain.Result{}, fmt.Errorf("%w: %s contains no extractable text (scanned image?)",
				apperrors.ErrValidation, filepath.Base(req.Path))
		}
	}
	return s.api.Upload(ctx, req)
}
