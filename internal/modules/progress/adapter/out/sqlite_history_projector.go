package out

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"studyhub/internal/modules/progress/domain"
	progressout "studyhub/internal/modules/progress/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteHistoryProjector mirrors the ledger's day marks into a local sqlite
// table for history queries. The projection is rebuilt wholesale after every
// ledger save; the JSON ledger stays the source of truth.
type SQLiteHistoryProjector struct {
	db *sql.DB
}

func NewSQLiteHistoryProjector(dbPath string) (progressout.HistoryProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	projector := &SQLiteHistoryProjector{db: db}
	if err := projector.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return projector, nil
}

func (p *SQLiteHistoryProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS daily_progress (
  date TEXT PRIMARY KEY,
  completed INTEGER NOT NULL
);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create daily_progress table: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) Rebuild(ctx context.Context, ledger domain.Ledger) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rebuild: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM daily_progress`); err != nil {
		return fmt.Errorf("clear daily_progress: %w", err)
	}
	const stmt = `INSERT INTO daily_progress (date, completed) VALUES (?, ?)`
	for date, completed := range ledger.DailyProgress {
		flag := 0
		if completed {
			flag = 1
		}
		if _, err := tx.ExecContext(ctx, stmt, date, flag); err != nil {
			return fmt.Errorf("insert day %s: %w", date, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rebuild: %w", err)
	}
	return nil
}

func (p *SQLiteHistoryProjector) RecentDays(ctx context.Context, limit int) ([]domain.DayRecord, error) {
	rows, err := p.db.QueryContext(ctx,
		`SELECT date, completed FROM daily_progress ORDER BY date DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query daily_progress: %w", err)
	}
	defer func() { _ = rows.Close() }()

	records := []domain.DayRecord{}
	for rows.Next() {
		var record domain.DayRecord
		var flag int
		if err := rows.Scan(&record.Date, &flag); err != nil {
			return nil, fmt.Errorf("scan day record: %w", err)
		}
		record.Completed = flag == 1
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate day records: %w", err)
	}
	return records, nil
}
