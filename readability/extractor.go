// Package readability provides content extraction via go-readability,
// a port of Mozilla's Readability. Used as fallback when the primary
// extractor finds nothing.
package readability

import (
	"strings"

	"github.com/ewozniak/clipvault"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements clipvault.Extractor at compile time.
var _ clipvault.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract article content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the readable article content.
func (e *Extractor) Extract(rawHTML string) (*clipvault.ExtractResult, error) {
	if rawHTML == "" {
		return nil, clipvault.Errorf(clipvault.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &clipvault.ExtractResult{
		Title:       article.Title,
		Byline:      article.Byline,
		Excerpt:     article.Excerpt,
		ContentHTML: article.Content,
		TextContent: article.TextContent,
	}, nil
}
