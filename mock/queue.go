package mock

import (
	"context"

	"github.com/ewozniak/clipvault"
)

var _ clipvault.QueueService = (*QueueService)(nil)

// QueueService is a mock implementation of clipvault.QueueService.
type QueueService struct {
	ReadFn  func(ctx context.Context) ([]clipvault.QueueItem, error)
	AddFn   func(ctx context.Context, url string) (*clipvault.AddResult, error)
	WriteFn func(ctx context.Context, items []clipvault.QueueItem) error
	ClearFn func(ctx context.Context) error
}

func (s *QueueService) Read(ctx context.Context) ([]clipvault.QueueItem, error) {
	return s.ReadFn(ctx)
}

func (s *QueueService) Add(ctx context.Context, url string) (*clipvault.AddResult, error) {
	return s.AddFn(ctx, url)
}

func (s *QueueService) Write(ctx context.Context, items []clipvault.QueueItem) error {
	return s.WriteFn(ctx, items)
}

func (s *QueueService) Clear(ctx context.Context) error {
	return s.ClearFn(ctx)
}
