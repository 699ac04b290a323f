package clipvault

import "context"

// Summarizer produces a short abstract of an article. Summarization is
// best-effort decoration: callers treat any error as "no summary" and
// proceed with the save.
type Summarizer interface {
	Summarize(ctx context.Context, content, title string) (string, error)
}
