package domain

import (
	"fmt"
	"path/filepath"
	"strings"

	apperrors "studyhub/internal/platform/errors"
)

// supportedExtensions mirrors what the backend document pipeline accepts.
var supportedExtensions = map[string]struct{}{
	".pdf":  {},
	".pptx": {},
	".png":  {},
	".jpg":  {},
	".jpeg": {},
}

type UploadRequest struct {
	Path     string
	Question string
}

func (r UploadRequest) Validate() error {
	if strings.TrimSpace(r.Path) == "" {
		return fmt.Errorf("%w: a document path is required", apperrors.ErrValidation)
	}
	ext := strings.ToLower(filepath.Ext(r.Path))
	if _, ok := supportedExtensions[ext]; !ok {
		return fmt.Errorf("%w: unsupported document type %q (use pdf, pptx, png or jpg)",
			apperrors.ErrValidation, ext)
	}
	return nil
}

func (r UploadRequest) IsPDF() bool {
	return strings.EqualFold(filepath.Ext(r.Path), ".pdf")
}

const (
	ResultTypeSummary = "summary"
	ResultTypeQA      = "qa"
)

// Result is a discriminated union on Type. Exactly one variant's fields are
// populated; Validate enforces this at the decode boundary so rendering never
// guards field access.
type Result struct {
	Type     string
	Filename string
	Summary  string
	Question string
	Answer   string
}

func (r Result) Validate() error {
	switch r.Type {
	case ResultTypeSummary:
		if r.Summary == "" {
			return fmt.Errorf("summary result is missing its summary text")
		}
		return nil
	case ResultTypeQA:
		if r.Question == "" || r.Answer == "" {
			return fmt.Errorf("qa result is missing question or answer")
		}
		return nil
	default:
		return fmt.Errorf("unknown result type %q", r.Type)
	}
}

// PDFInfo is the local precheck of a PDF before upload.
type PDFInfo struct {
	Pages   int
	HasText bool
}
