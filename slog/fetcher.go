// Package slog provides logging decorators for clipvault services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/ewozniak/clipvault"
)

// Ensure Fetcher implements clipvault.Fetcher at compile time.
var _ clipvault.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a clipvault.Fetcher with structured request logging.
type Fetcher struct {
	next   clipvault.Fetcher
	logger *slog.Logger
}

// NewFetcher creates a logging Fetcher around next.
func NewFetcher(next clipvault.Fetcher, logger *slog.Logger) *Fetcher {
	return &Fetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the outcome.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*clipvault.FetchResult, error) {
	begin := time.Now()
	result, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Warn("fetch failed",
			"url", url,
			"code", clipvault.ErrorCode(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	f.logger.Info("fetch",
		"url", url,
		"status", result.StatusCode,
		"bytes", len(result.HTML),
		"duration", time.Since(begin),
	)
	return result, nil
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}
