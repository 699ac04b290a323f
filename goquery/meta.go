// Package goquery extracts page metadata from HTML head and structural
// elements using CSS selectors.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ewozniak/clipvault"
)

// Ensure MetaParser implements clipvault.MetaParser at compile time.
var _ clipvault.MetaParser = (*MetaParser)(nil)

// MetaParser scrapes OpenGraph tags, the title tag, the first h1, and the
// first time[datetime] from a page. It is the metadata source of last
// resort when content extraction fails, e.g. on paywalled pages that still
// ship their head section.
type MetaParser struct{}

// NewMetaParser creates a new MetaParser.
func NewMetaParser() *MetaParser {
	return &MetaParser{}
}

// Parse scrapes metadata from rawHTML. Parsing never fails: unparseable
// input or missing elements simply yield empty fields.
func (p *MetaParser) Parse(rawHTML string) *clipvault.PageMeta {
	meta := &clipvault.PageMeta{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return meta
	}

	meta.OGTitle = metaContent(doc, `meta[property="og:title"]`)
	meta.OGSiteName = metaContent(doc, `meta[property="og:site_name"]`)
	meta.OGPublished = metaContent(doc, `meta[property="article:published_time"]`)

	meta.OGAuthor = metaContent(doc, `meta[property="article:author"]`)
	if meta.OGAuthor == "" {
		meta.OGAuthor = metaContent(doc, `meta[name="author"]`)
	}

	meta.TitleTag = strings.TrimSpace(doc.Find("title").First().Text())
	meta.H1 = strings.TrimSpace(doc.Find("h1").First().Text())

	if dt, ok := doc.Find("time[datetime]").First().Attr("datetime"); ok {
		meta.TimeDatetime = strings.TrimSpace(dt)
	}

	return meta
}

func metaContent(doc *goquery.Document, selector string) string {
	content, _ := doc.Find(selector).First().Attr("content")
	return strings.TrimSpace(content)
}
