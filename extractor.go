package clipvault

// ExtractResult holds the readable content recovered from an HTML page.
type ExtractResult struct {
	// Title is the article title from page metadata.
	Title string

	// Byline is the author attribution, if the extractor found one.
	Byline string

	// Excerpt is a short description or lead paragraph.
	Excerpt string

	// ContentHTML is the main article content as clean HTML, with
	// boilerplate (nav, footer, sidebar, ads) removed.
	ContentHTML string

	// TextContent is the plain text of the main content. Its length
	// drives the complete-vs-partial classification.
	TextContent string
}

// Extractor extracts the main article content from HTML, removing
// boilerplate.
type Extractor interface {
	// Extract processes raw HTML and returns the readable content.
	// A page with no recognizable article yields an empty result, not
	// an error; errors indicate unparseable input.
	Extract(html string) (*ExtractResult, error)
}
