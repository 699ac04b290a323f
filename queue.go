package clipvault

import (
	"context"
	"time"
)

// QueueItem is a URL waiting for a later save attempt.
type QueueItem struct {
	URL     string    `json:"url"`
	AddedAt time.Time `json:"addedAt"`
}

// AddResult reports the outcome of a queue insertion.
type AddResult struct {
	Added  bool
	Reason string
}

// QueueService manages the durable list of pending URLs. The queue survives
// process restarts; every mutation is persisted atomically so a crash never
// leaves a partially-written queue behind.
type QueueService interface {
	// Read returns the queued items in stored order. A missing or corrupt
	// queue file reads as an empty queue, never an error.
	Read(ctx context.Context) ([]QueueItem, error)

	// Add appends url with the current timestamp. A URL already queued
	// (exact raw-string match) is rejected with Added=false and a reason.
	Add(ctx context.Context, url string) (*AddResult, error)

	// Write replaces the queue with items. An empty list removes the
	// underlying file, so "no queue" and "empty queue" are the same state.
	Write(ctx context.Context, items []QueueItem) error

	// Clear removes the queue entirely.
	Clear(ctx context.Context) error
}
