package out

import (
	"context"

	"studyhub/internal/modules/moderation/domain"
)

// Classifier decides whether user input may be sent to the backend.
type Classifier interface {
	Classify(ctx context.Context, text string) (domain.Decision, error)
}

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host runs an out-of-process classifier described by a manifest.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	GetMetadata(ctx context.Context, manifest domain.Manifest) (domain.Metadata, error)
	Classify(ctx context.Context, manifest domain.Manifest, text string) (domain.Decision, error)
}
