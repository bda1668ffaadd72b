package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"studyhub/internal/modules/moderation/domain"
	"studyhub/internal/modules/moderation/dto"
	moderationout "studyhub/internal/modules/moderation/port/out"
)

// ModerationService fronts the configured classifier. The manifest store and
// host are nil when the built-in keyword filter is active; Doctor then has
// nothing to report.
type ModerationService struct {
	classifier moderationout.Classifier
	store      moderationout.ManifestStore
	host       moderationout.Host
}

func NewModerationService(classifier moderationout.Classifier, store moderationout.ManifestStore, host moderationout.Host) *ModerationService {
	return &ModerationService{classifier: classifier, store: store, host: host}
}

func (s *ModerationService) Check(ctx context.Context, text string) (domain.Decision, error) {
	return s.classifier.Classify(ctx, text)
}

func (s *ModerationService) Doctor(ctx context.Context) ([]dto.DoctorResult, error) {
	if s.store == nil {
		return []dto.DoctorResult{}, nil
	}
	manifests, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	results := make([]dto.DoctorResult, 0, len(manifests))
	for _, m := range manifests {
		result := dto.DoctorResult{Name: m.Name, Version: m.Version}
		if err := m.Validate(); err != nil {
			result.Error = err.Error()
			results = append(results, result)
			continue
		}
		result.BinaryReachable = fileExists(m.Binary)
		if result.BinaryReachable {
			result.ChecksumValid = ChecksumMatches(m.Binary, m.SHA256) == nil
		}
		if result.BinaryReachable && result.ChecksumValid && m.Enabled && s.host != nil {
			if err := s.host.CheckLifecycle(ctx, m); err != nil {
				result.Error = err.Error()
			} else {
				result.LifecycleOK = true
			}
		}
		if !result.BinaryReachable {
			result.Error = fmt.Sprintf("binary does not exist: %s", m.Binary)
		}
		if result.BinaryReachable && !result.ChecksumValid {
			result.Error = "checksum mismatch"
		}
		results = append(results, result)
	}
	return results, nil
}

// ChecksumMatches verifies a plugin binary against its manifest digest.
func ChecksumMatches(path string, expected string) error {
	payload, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read plugin binary: %w", err)
	}
	hash := sha256.Sum256(payload)
	if hex.EncodeToString(hash[:]) != expected {
		return fmt.Errorf("%w: %s", domain.ErrChecksumMismatch, filepath.Base(path))
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
