package mock

import (
	"context"

	"github.com/ewozniak/clipvault"
)

var _ clipvault.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of clipvault.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, content, title string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, content, title string) (string, error) {
	return s.SummarizeFn(ctx, content, title)
}
