package goquery_test

import (
	"testing"

	"github.com/ewozniak/clipvault/goquery"
	"github.com/stretchr/testify/assert"
)

func TestMetaParser_Parse_FullPage(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html><head>
<title>Title Tag | Site</title>
<meta property="og:title" content="OG Title">
<meta property="og:site_name" content="Example News">
<meta property="article:published_time" content="2026-01-10T08:00:00Z">
<meta property="article:author" content="Jo Writer">
</head><body>
<h1>  Headline One  </h1>
<article><time datetime="2026-01-10">January 10</time><p>Body.</p></article>
</body></html>`

	meta := goquery.NewMetaParser().Parse(html)

	assert.Equal(t, "OG Title", meta.OGTitle)
	assert.Equal(t, "Example News", meta.OGSiteName)
	assert.Equal(t, "2026-01-10T08:00:00Z", meta.OGPublished)
	assert.Equal(t, "Jo Writer", meta.OGAuthor)
	assert.Equal(t, "Title Tag | Site", meta.TitleTag)
	assert.Equal(t, "Headline One", meta.H1)
	assert.Equal(t, "2026-01-10", meta.TimeDatetime)
}

func TestMetaParser_Parse_AuthorFallback(t *testing.T) {
	t.Parallel()

	html := `<html><head><meta name="author" content="Meta Author"></head><body></body></html>`

	meta := goquery.NewMetaParser().Parse(html)

	assert.Equal(t, "Meta Author", meta.OGAuthor)
}

func TestMetaParser_Parse_EmptyInput(t *testing.T) {
	t.Parallel()

	meta := goquery.NewMetaParser().Parse("")

	assert.Empty(t, meta.OGTitle)
	assert.Empty(t, meta.TitleTag)
	assert.Empty(t, meta.H1)
}

func TestMetaParser_Parse_BestTitlePrecedence(t *testing.T) {
	t.Parallel()

	html := `<html><head><title>Only Title Tag</title></head><body></body></html>`

	meta := goquery.NewMetaParser().Parse(html)

	assert.Equal(t, "Only Title Tag", meta.BestTitle())
}
