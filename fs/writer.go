package fs

import (
	"context"
	"strings"

	"github.com/ewozniak/clipvault"
)

// Ensure Writer implements clipvault.DocumentWriter at compile time.
var _ clipvault.DocumentWriter = (*Writer)(nil)

// Writer writes documents as markdown files with a frontmatter header.
type Writer struct {
	frontmatter clipvault.FrontmatterEncoder
}

// NewWriter creates a Writer using the given frontmatter encoder.
func NewWriter(frontmatter clipvault.FrontmatterEncoder) *Writer {
	return &Writer{frontmatter: frontmatter}
}

// CreateDocument writes doc to path atomically.
func (w *Writer) CreateDocument(ctx context.Context, doc *clipvault.Document, path string) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	content, err := w.render(doc)
	if err != nil {
		return err
	}

	return writeFileAtomic(path, []byte(content), 0644)
}

// render produces the full document text: frontmatter, a title heading,
// and the markdown body.
func (w *Writer) render(doc *clipvault.Document) (string, error) {
	header, err := w.frontmatter.Encode(&clipvault.Frontmatter{
		URL:       doc.URL,
		Saved:     doc.SavedAt.Format("2006-01-02"),
		Title:     doc.Title,
		Source:    doc.Source,
		Author:    doc.Author,
		Published: doc.Published,
		Tags:      doc.Tags,
		Status:    string(doc.Status),
		Warning:   doc.Warning,
		Summary:   doc.Summary,
	})
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n# ")
	b.WriteString(doc.Title)
	b.WriteString("\n\n")
	b.WriteString(doc.Content)
	if !strings.HasSuffix(doc.Content, "\n") {
		b.WriteString("\n")
	}
	return b.String(), nil
}
