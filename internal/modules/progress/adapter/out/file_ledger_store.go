package out

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"studyhub/internal/modules/progress/domain"
	progressout "studyhub/internal/modules/progress/port/out"
)

// FileLedgerStore persists the ledger as one JSON blob. Missing or
// unparsable content yields a default ledger, and partial blobs from older
// schema versions are filled in by Normalize, so startup never crashes on
// stored state.
type FileLedgerStore struct {
	path string
}

func NewFileLedgerStore(path string) progressout.LedgerStore {
	return &FileLedgerStore{path: path}
}

func (s *FileLedgerStore) Load(_ context.Context) (domain.Ledger, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.NewLedger(), nil
		}
		return domain.Ledger{}, fmt.Errorf("read progress: %w", err)
	}
	ledger := domain.NewLedger()
	if err := json.Unmarshal(payload, &ledger); err != nil {
		return domain.NewLedger(), nil
	}
	ledger.Normalize()
	return ledger, nil
}

func (s *FileLedgerStore) Save(_ context.Context, ledger domain.Ledger) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create progress dir: %w", err)
	}
	payload, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write progress: %w", err)
	}
	return nil
}
