package clipvault

// PageMeta holds metadata scraped from a page's head and structural
// elements. It is the fallback source of title, author, and date when the
// content extractor comes up short (e.g. behind a paywall).
type PageMeta struct {
	OGTitle      string // og:title
	OGAuthor     string // article:author or author meta
	OGPublished  string // article:published_time
	OGSiteName   string // og:site_name
	H1           string // first h1 text
	TitleTag     string // <title> text
	TimeDatetime string // first <time datetime="..."> value
}

// MetaParser scrapes PageMeta from raw HTML. Parsing is best-effort:
// missing elements yield empty fields, never an error.
type MetaParser interface {
	Parse(html string) *PageMeta
}

// BestTitle returns the most specific non-empty title candidate.
func (m *PageMeta) BestTitle() string {
	for _, candidate := range []string{m.OGTitle, m.H1, m.TitleTag} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}

// BestPublished returns the most specific non-empty publication date.
func (m *PageMeta) BestPublished() string {
	if m.OGPublished != "" {
		return m.OGPublished
	}
	return m.TimeDatetime
}
