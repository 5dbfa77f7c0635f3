package history

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"adspend_analyst/pkg/core/report"
)

// FileLog is the local fallback when no database is configured: the whole
// collection lives as one serialized JSON array in a single file, rewritten
// entirely on every add/delete. Fine for the tens of entries a session
// produces.
type FileLog struct {
	path string
	mu   sync.Mutex
}

// NewFileLog creates a file-backed log. An empty path defaults to
// .cache/history/report_history.json.
func NewFileLog(path string) *FileLog {
	if path == "" {
		path = filepath.Join(".cache", "history", "report_history.json")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		fmt.Printf("[WARNING] Check history dir: %v\n", err)
	}
	return &FileLog{path: path}
}

func (l *FileLog) Append(ctx context.Context, item report.HistoryItem) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load()
	if err != nil {
		return err
	}
	items = append(items, item)
	return l.save(items)
}

func (l *FileLog) List(ctx context.Context) ([]report.HistoryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp > items[j].Timestamp
	})
	return items, nil
}

func (l *FileLog) Remove(ctx context.Context, id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	items, err := l.load()
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return l.save(kept)
}

func (l *FileLog) load() ([]report.HistoryItem, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file: %w", err)
	}
	var items []report.HistoryItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse history file: %w", err)
	}
	return items, nil
}

func (l *FileLog) save(items []report.HistoryItem) error {
	if items == nil {
		items = []report.HistoryItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := os.WriteFile(l.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}
