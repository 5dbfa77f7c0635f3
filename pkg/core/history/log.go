// Package history owns the append-only log of completed analyses. The core
// merge/ingest logic never touches a storage mechanism directly; it sees only
// this interface.
package history

import (
	"context"

	"adspend_analyst/pkg/core/report"
)

// Log is the append-only history abstraction. Entries are immutable: they are
// appended once, listed, and removed only by explicit user action, never
// edited in place.
type Log interface {
	Append(ctx context.Context, item report.HistoryItem) error
	List(ctx context.Context) ([]report.HistoryItem, error)
	Remove(ctx context.Context, id string) error
}
