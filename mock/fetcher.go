package mock

import (
	"context"

	"github.com/ewozniak/clipvault"
)

var _ clipvault.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of clipvault.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*clipvault.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*clipvault.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
