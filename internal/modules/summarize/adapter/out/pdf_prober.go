package out

import (
	"context"
	"fmt"
	"strings"

	"rsc.io/pdf"

	"studyhub/internal/modules/summarize/domain"
	summarizeout "studyhub/internal/modules/summarize/port/out"
)

// probePageLimit bounds how many pages are scanned for text. A document with
// no text in its first pages is treated as image-only.
const probePageLimit = 5

type LocalPDFProber struct{}

func NewLocalPDFProber() summarizeout.PDFProber {
	return &LocalPDFProber{}
}

func (p *LocalPDFProber) Probe(_ context.Context, path string) (domain.PDFInfo, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return domain.PDFInfo{}, fmt.Errorf("open pdf: %w", err)
	}
	total := doc.NumPage()
	info := domain.PDFInfo{Pages: total}
	limit := total
	if limit > probePageLimit {
		limit = probePageLimit
	}
	for number := 1; number <= limit; number++ {
		page := doc.Page(number)
		if page.V.IsNull() {
			continue
		}
		for _, text := range page.Content().Text {
			if strings.TrimSpace(text.S) != "" {
				info.HasText = true
				return info, nil
			}
		}
	}
	return info, nil
}
