package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/ewozniak/clipvault"
)

// QueueFile is the queue's filename inside the article directory.
const QueueFile = ".queue.json"

// Ensure QueueStore implements clipvault.QueueService at compile time.
var _ clipvault.QueueService = (*QueueStore)(nil)

// QueueStore persists the pending-URL queue as a single JSON file with
// atomic replace semantics. It assumes one active writer per vault; there
// is no cross-process locking.
type QueueStore struct {
	dir string
	now func() time.Time
}

// NewQueueStore creates a QueueStore inside the given article directory.
func NewQueueStore(dir string) *QueueStore {
	return &QueueStore{dir: dir, now: time.Now}
}

// NewQueueStoreAt is like NewQueueStore with an injected clock, for tests.
func NewQueueStoreAt(dir string, now func() time.Time) *QueueStore {
	return &QueueStore{dir: dir, now: now}
}

func (s *QueueStore) path() string {
	return filepath.Join(s.dir, QueueFile)
}

// Read returns the queued items in stored order. A missing or corrupt
// queue file reads as an empty queue.
func (s *QueueStore) Read(ctx context.Context) ([]clipvault.QueueItem, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		return nil, nil
	}

	var items []clipvault.QueueItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, nil
	}
	return items, nil
}

// Add appends url to the queue unless the exact same string is already
// queued. The comparison is intentionally on the raw string, not the
// normalized URL, matching how items were observed to be queued.
func (s *QueueStore) Add(ctx context.Context, url string) (*clipvault.AddResult, error) {
	items, err := s.Read(ctx)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if item.URL == url {
			return &clipvault.AddResult{
				Added:  false,
				Reason: "URL is already queued",
			}, nil
		}
	}

	items = append(items, clipvault.QueueItem{URL: url, AddedAt: s.now()})
	if err := s.Write(ctx, items); err != nil {
		return nil, err
	}
	return &clipvault.AddResult{Added: true}, nil
}

// Write replaces the queue with items. An empty list deletes the file, so
// an empty queue and a missing queue are the same state on disk.
func (s *QueueStore) Write(ctx context.Context, items []clipvault.QueueItem) error {
	if len(items) == 0 {
		return s.Clear(ctx)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(s.path(), data, 0644)
}

// Clear removes the queue file.
func (s *QueueStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
