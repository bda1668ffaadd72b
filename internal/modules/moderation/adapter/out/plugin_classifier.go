package out

import (
	"context"
	"errors"
	"fmt"

	"studyhub/internal/modules/moderation/domain"
	moderationout "studyhub/internal/modules/moderation/port/out"
	"studyhub/internal/modules/moderation/service"
)

// PluginClassifier classifies through the first enabled manifest entry.
// The binary checksum is verified on every call; a tampered plugin never
// runs.
type PluginClassifier struct {
	store moderationout.ManifestStore
	host  moderationout.Host
}

func NewPluginClassifier(store moderationout.ManifestStore, host moderationout.Host) moderationout.Classifier {
	return &PluginClassifier{store: store, host: host}
}

func (c *PluginClassifier) Classify(ctx context.Context, text string) (domain.Decision, error) {
	manifest, err := c.runnableManifest(ctx)
	if err != nil {
		return domain.Decision{}, err
	}
	decision, err := c.host.Classify(ctx, manifest, text)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return domain.Decision{}, fmt.Errorf("%w: %s", domain.ErrPluginTimeout, manifest.Name)
		}
		return domain.Decision{}, err
	}
	return decision, nil
}

func (c *PluginClassifier) runnableManifest(ctx context.Context) (domain.Manifest, error) {
	manifests, err := c.store.Load(ctx)
	if err != nil {
		return domain.Manifest{}, err
	}
	for _, manifest := range manifests {
		if err := manifest.Validate(); err != nil {
			return domain.Manifest{}, err
		}
		if !manifest.Enabled {
			continue
		}
		if err := service.ChecksumMatches(manifest.Binary, manifest.SHA256); err != nil {
			return domain.Manifest{}, err
		}
		return manifest, nil
	}
	return domain.Manifest{}, domain.ErrPluginNotFound
}
