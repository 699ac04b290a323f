package mock

import (
	"context"

	"github.com/ewozniak/clipvault"
)

var _ clipvault.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of clipvault.DocumentWriter.
type DocumentWriter struct {
	CreateDocumentFn func(ctx context.Context, doc *clipvault.Document, path string) error
}

func (w *DocumentWriter) CreateDocument(ctx context.Context, doc *clipvault.Document, path string) error {
	return w.CreateDocumentFn(ctx, doc, path)
}

var _ clipvault.DuplicateFinder = (*DuplicateFinder)(nil)

// DuplicateFinder is a mock implementation of clipvault.DuplicateFinder.
type DuplicateFinder struct {
	FindDuplicateFn func(ctx context.Context, normalizedURL string) (*clipvault.DuplicateMatch, error)
}

func (f *DuplicateFinder) FindDuplicate(ctx context.Context, normalizedURL string) (*clipvault.DuplicateMatch, error) {
	return f.FindDuplicateFn(ctx, normalizedURL)
}

var _ clipvault.FilenameGenerator = (*FilenameGenerator)(nil)

// FilenameGenerator is a mock implementation of clipvault.FilenameGenerator.
type FilenameGenerator struct {
	GenerateFn func(title, domain string) (*clipvault.FilenamePlan, error)
}

func (g *FilenameGenerator) Generate(title, domain string) (*clipvault.FilenamePlan, error) {
	return g.GenerateFn(title, domain)
}
