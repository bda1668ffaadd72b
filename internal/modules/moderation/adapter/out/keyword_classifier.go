package out

import (
	"context"

	"studyhub/internal/modules/moderation/domain"
	moderationout "studyhub/internal/modules/moderation/port/out"
)

// KeywordClassifier is the in-process default: the denylist match never does
// I/O and never fails.
type KeywordClassifier struct{}

func NewKeywordClassifier() moderationout.Classifier {
	return KeywordClassifier{}
}

func (KeywordClassifier) Classify(_ context.Context, text string) (domain.Decision, error) {
	return domain.ClassifyKeywords(text), nil
}
