package mock

import "github.com/ewozniak/clipvault"

var _ clipvault.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of clipvault.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*clipvault.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*clipvault.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ clipvault.Converter = (*Converter)(nil)

// Converter is a mock implementation of clipvault.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ clipvault.MetaParser = (*MetaParser)(nil)

// MetaParser is a mock implementation of clipvault.MetaParser.
type MetaParser struct {
	ParseFn func(html string) *clipvault.PageMeta
}

func (p *MetaParser) Parse(html string) *clipvault.PageMeta {
	return p.ParseFn(html)
}
