package clipvault

import (
	"context"
	"time"
)

// DocumentStatus marks whether a document was saved from complete or
// partial extraction.
type DocumentStatus string

// Document statuses.
const (
	StatusComplete DocumentStatus = "complete"
	StatusPartial  DocumentStatus = "partial"
)

// Document represents a saved article. Documents are written once and never
// mutated afterwards; the normalized URL field is the deduplication key.
type Document struct {
	ID          string         `json:"id"`
	URL         string         `json:"url"`
	Title       string         `json:"title"`
	Source      string         `json:"source"`
	Author      string         `json:"author,omitempty"`
	Published   string         `json:"published,omitempty"`
	Tags        []string       `json:"tags"`
	Status      DocumentStatus `json:"status"`
	Warning     string         `json:"warning,omitempty"`
	Summary     string         `json:"summary,omitempty"`
	Content     string         `json:"content"`
	ContentHash string         `json:"contentHash"`
	SavedAt     time.Time      `json:"savedAt"`
}

// Validate returns an error if the document contains invalid fields.
func (d *Document) Validate() error {
	if d.URL == "" {
		return Errorf(EINVALID, "document URL required")
	}
	if d.Title == "" {
		return Errorf(EINVALID, "document title required")
	}
	if len(d.Tags) == 0 {
		return Errorf(EINVALID, "document requires at least one tag")
	}
	if d.Status != StatusComplete && d.Status != StatusPartial {
		return Errorf(EINVALID, "invalid document status %q", d.Status)
	}
	return nil
}

// DocumentWriter persists documents to the vault.
type DocumentWriter interface {
	// CreateDocument writes the document to path. The write is atomic:
	// a crash never leaves a half-written document behind.
	CreateDocument(ctx context.Context, doc *Document, path string) error
}

// FilenamePlan is a reserved target for a document about to be written.
type FilenamePlan struct {
	// Filename is the base name, e.g. "Foo (2026-02-15).md".
	Filename string

	// Path is the full path under the vault's article directory.
	Path string
}

// FilenameGenerator derives a collision-free storage path from an article
// title. The domain serves as fallback when the title is unusable.
type FilenameGenerator interface {
	// Generate probes the live filesystem and returns the first free
	// target. Collision checking is check-then-write and assumes a
	// single active writer per vault.
	Generate(title, domain string) (*FilenamePlan, error)
}

// DuplicateMatch describes a previously saved document matching a URL.
type DuplicateMatch struct {
	File  string
	Title string
}

// DuplicateFinder checks whether a normalized URL was already saved.
type DuplicateFinder interface {
	// FindDuplicate returns the first stored document whose url field
	// equals normalizedURL exactly, or nil if none exists. A vault with
	// no article directory has no duplicates.
	FindDuplicate(ctx context.Context, normalizedURL string) (*DuplicateMatch, error)
}
