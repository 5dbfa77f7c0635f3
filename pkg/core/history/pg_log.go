package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"adspend_analyst/pkg/core/report"
)

// PGLog persists history entries in Postgres, one JSONB blob per entry.
//
// Schema assumption:
// CREATE TABLE IF NOT EXISTS report_history (
//   id TEXT PRIMARY KEY,
//   created_at TIMESTAMPTZ,
//   entry JSONB
// );
type PGLog struct {
	pool *pgxpool.Pool
}

// NewPGLog creates a Postgres-backed log. If pool is nil the shared pool
// from InitDB is used.
func NewPGLog(pool *pgxpool.Pool) *PGLog {
	return &PGLog{pool: pool}
}

func (l *PGLog) getPool() *pgxpool.Pool {
	if l.pool != nil {
		return l.pool
	}
	return GetPool()
}

func (l *PGLog) Append(ctx context.Context, item report.HistoryItem) error {
	pool := l.getPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	entryJSON, err := json.Marshal(item)
	if err != nil {
		return fmt.Errorf("failed to marshal history entry: %w", err)
	}

	query := `
		INSERT INTO report_history (id, created_at, entry)
		VALUES ($1, to_timestamp($2 / 1000.0), $3)
	`
	if _, err := pool.Exec(ctx, query, item.ID, item.Timestamp, entryJSON); err != nil {
		return fmt.Errorf("failed to append history entry: %w", err)
	}
	return nil
}

func (l *PGLog) List(ctx context.Context) ([]report.HistoryItem, error) {
	pool := l.getPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}

	query := `SELECT entry FROM report_history ORDER BY created_at DESC`
	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var items []report.HistoryItem
	for rows.Next() {
		var entryJSON []byte
		if err := rows.Scan(&entryJSON); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		var item report.HistoryItem
		if err := json.Unmarshal(entryJSON, &item); err != nil {
			return nil, fmt.Errorf("failed to unmarshal history entry: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

func (l *PGLog) Remove(ctx context.Context, id string) error {
	pool := l.getPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	if _, err := pool.Exec(ctx, `DELETE FROM report_history WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to remove history entry: %w", err)
	}
	return nil
}
