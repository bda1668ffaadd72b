package out

import (
	"context"

	"studyhub/internal/modules/progress/domain"
)

// LedgerStore persists the whole ledger under one storage slot. Load never
// fails on missing or unparsable data; it falls back to defaults.
type LedgerStore interface {
	Load(ctx context.Context) (domain.Ledger, error)
	Save(ctx context.Context, ledger domain.Ledger) error
}

// HistoryProjector maintains a queryable projection of the day marks.
// The ledger file stays the source of truth; the projection is rebuilt
// wholesale after every save.
type HistoryProjector interface {
	Rebuild(ctx context.Context, ledger domain.Ledger) error
	RecentDays(ctx context.Context, limit int) ([]domain.DayRecord, error)
}
