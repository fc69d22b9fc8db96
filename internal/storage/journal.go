//go:generate mockgen -source ./journal.go -destination=./mocks/journal.go -package=mock_storage
package storage

import (
	"context"
	"sync"
)

// Journal makes committed changes durable. Storage calls Record while it
// holds the collection's write lock; a Record error aborts the change.
type Journal interface {
	Record(ctx context.Context, change Change) error
	History(ctx context.Context, code string) ([]HistoryEntry, error)
}

// MemoryJournal keeps the status history in process.
type MemoryJournal struct {
	mu      sync.RWMutex
	entries map[string][]HistoryEntry
}

func NewMemoryJournal() *MemoryJournal {
	return &MemoryJournal{entries: make(map[string][]HistoryEntry)}
}

func (j *MemoryJournal) Record(_ context.Context, change Change) error {
	if !change.StatusChanged() {
		return nil
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	code := change.Current.Code
	j.entries[code] = append(j.entries[code], HistoryEntry{
		Code:           code,
		Status:         change.Current.Status,
		PreviousStatus: change.PreviousStatus(),
		Action:         change.Action,
		ChangedAt:      change.ChangedAt,
	})
	return nil
}

func (j *MemoryJournal) History(_ context.Context, code string) ([]HistoryEntry, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	entries := make([]HistoryEntry, len(j.entries[code]))
	copy(entries, j.entries[code])
	return entries, nil
}
