package save

import "github.com/ewozniak/clipvault"

// Result is the per-URL outcome of a save attempt. Exactly one of Saved,
// Duplicate, and Failure is populated.
type Result struct {
	URL       string
	Saved     *SavedArticle
	Duplicate *clipvault.DuplicateMatch
	Failure   *Failure
}

// SavedArticle describes a document that was (or, on a dry run, would have
// been) written to the vault.
type SavedArticle struct {
	File      string
	Title     string
	Author    string
	Source    string
	Published string
	Tags      []string
	Status    clipvault.DocumentStatus
	DryRun    bool
}

// Failure describes an attempt that produced no document.
type Failure struct {
	// Code is the clipvault error code classifying the failure.
	Code string

	// Message is the operator-readable description.
	Message string
}

// Retryable reports whether the failed item should stay in the queue for a
// later attempt. Validation failures never succeed on retry; network and
// filesystem failures might.
func (f *Failure) Retryable() bool {
	return f.Code != clipvault.EINVALID
}

// BatchResult summarizes one queue processing run.
type BatchResult struct {
	Processed  int
	Saved      int
	Duplicates int
	Failed     int
	Results    []Result
}
