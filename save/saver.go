// Package save orchestrates the article save pipeline. It sequences
// validation, normalization, duplicate detection, fetching, extraction,
// classification, naming, and persistence for one URL or a queue of URLs.
package save

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/ewozniak/clipvault"
	"github.com/google/uuid"
)

// DefaultMinContentLength is the minimum extracted text length, in
// characters, for a save to count as complete. Shorter extractions are
// classified as partial when metadata was recoverable.
const DefaultMinContentLength = 150

// DefaultTagCount is how many keyword tags are derived for complete saves.
const DefaultTagCount = 5

// SentinelTag marks documents saved without derived or explicit tags.
const SentinelTag = "untagged"

// Saver orchestrates article saves. Collaborators are interfaces so the
// pipeline can be exercised without network or LLM access. Summarizer and
// Limiter are optional; everything else is required.
type Saver struct {
	Policy     clipvault.Policy
	Duplicates clipvault.DuplicateFinder
	Fetcher    clipvault.Fetcher
	Meta       clipvault.MetaParser
	Extractor  clipvault.Extractor
	Fallback   clipvault.Extractor
	Converter  clipvault.Converter
	Summarizer clipvault.Summarizer
	Names      clipvault.FilenameGenerator
	Documents  clipvault.DocumentWriter
	Queue      clipvault.QueueService
	Limiter    clipvault.DomainLimiter
	Logger     *slog.Logger

	Stopwords        map[string]struct{}
	MinContentLength int
	TagCount         int

	// Now and NewID are overridable for tests.
	Now   func() time.Time
	NewID func() string
}

// Options adjust a single save attempt.
type Options struct {
	// Tags overrides keyword-derived tags when non-empty.
	Tags []string

	// DryRun executes every step, including filename collision probing,
	// but skips the final write.
	DryRun bool
}

// SaveOne runs the full pipeline for one URL and always returns a Result;
// anticipated problems surface as the Failure variant, never as a panic or
// a bare error.
func (s *Saver) SaveOne(ctx context.Context, rawURL string, opts Options) Result {
	if err := s.Policy.Validate(rawURL); err != nil {
		return failure(rawURL, err)
	}

	normalized, err := s.Policy.Normalize(rawURL)
	if err != nil {
		return failure(rawURL, err)
	}

	match, err := s.Duplicates.FindDuplicate(ctx, normalized)
	if err != nil {
		return failure(rawURL, err)
	}
	if match != nil {
		return Result{URL: rawURL, Duplicate: match}
	}

	domain := clipvault.ExtractDomain(normalized)
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx, domain); err != nil {
			return failure(rawURL, err)
		}
	}

	fetched, err := s.Fetcher.Fetch(ctx, normalized)
	if err != nil {
		return failure(rawURL, err)
	}

	var meta *clipvault.PageMeta
	if s.Meta != nil {
		meta = s.Meta.Parse(fetched.HTML)
	} else {
		meta = &clipvault.PageMeta{}
	}

	if failed, why := unusableStatus(fetched.StatusCode); failed {
		return failure(rawURL, clipvault.Errorf(clipvault.EUNAVAILABLE,
			"fetch of %s failed: %s", normalized, why))
	}

	extracted := s.extract(fetched.HTML)
	restricted := restrictedStatus(fetched.StatusCode)
	complete := !restricted && utf8.RuneCountInString(extracted.TextContent) >= s.minContentLength()

	if !complete && !hasPartialMetadata(extracted, meta) {
		return failure(rawURL, clipvault.Errorf(clipvault.EUNAVAILABLE,
			"nothing usable extracted from %s", normalized))
	}

	title := firstNonEmpty(extracted.Title, meta.BestTitle(), domain)

	doc := &clipvault.Document{
		ID:        s.newID(),
		URL:       normalized,
		Title:     title,
		Source:    firstNonEmpty(meta.OGSiteName, domain),
		Author:    firstNonEmpty(extracted.Byline, meta.OGAuthor),
		Published: meta.BestPublished(),
		SavedAt:   s.now(),
	}

	if complete {
		markdown, err := s.Converter.Convert(extracted.ContentHTML)
		if err != nil {
			return failure(rawURL, err)
		}
		doc.Status = clipvault.StatusComplete
		doc.Content = markdown
		doc.Tags = s.tagsFor(markdown, opts.Tags)
		doc.Summary = s.summarize(ctx, markdown, title)
	} else {
		doc.Status = clipvault.StatusPartial
		doc.Content = partialContent(extracted)
		doc.Tags = s.tagsFor("", opts.Tags)
		doc.Warning = partialWarning(fetched.StatusCode)
	}
	doc.ContentHash = fmt.Sprintf("%016x", xxhash.Sum64String(doc.Content))

	plan, err := s.Names.Generate(title, domain)
	if err != nil {
		return failure(rawURL, err)
	}

	if !opts.DryRun {
		if err := s.Documents.CreateDocument(ctx, doc, plan.Path); err != nil {
			return failure(rawURL, err)
		}
	}

	return Result{
		URL: rawURL,
		Saved: &SavedArticle{
			File:      plan.Filename,
			Title:     doc.Title,
			Author:    doc.Author,
			Source:    doc.Source,
			Published: doc.Published,
			Tags:      doc.Tags,
			Status:    doc.Status,
			DryRun:    opts.DryRun,
		},
	}
}

// ProcessQueue saves every queued URL strictly in stored order, one at a
// time. Items that neither saved nor deduplicated are written back for a
// later attempt. An unexpected (internal) failure aborts the remaining
// batch; anticipated failures are per-item.
func (s *Saver) ProcessQueue(ctx context.Context, opts Options) (*BatchResult, error) {
	items, err := s.Queue.Read(ctx)
	if err != nil {
		return nil, err
	}

	batch := &BatchResult{}
	var remaining []clipvault.QueueItem

	for i, item := range items {
		if ctx.Err() != nil {
			remaining = append(remaining, items[i:]...)
			break
		}

		result := s.SaveOne(ctx, item.URL, opts)
		batch.Processed++
		batch.Results = append(batch.Results, result)

		switch {
		case result.Saved != nil:
			batch.Saved++
		case result.Duplicate != nil:
			batch.Duplicates++
		case result.Failure != nil:
			batch.Failed++
			if result.Failure.Retryable() {
				remaining = append(remaining, item)
			}
			if result.Failure.Code == clipvault.EINTERNAL {
				remaining = append(remaining, items[i+1:]...)
				if err := s.writeBack(ctx, remaining, opts); err != nil {
					return batch, err
				}
				return batch, clipvault.Errorf(clipvault.EINTERNAL,
					"aborting queue after unexpected error on %s: %s", item.URL, result.Failure.Message)
			}
		}
	}

	if err := s.writeBack(ctx, remaining, opts); err != nil {
		return batch, err
	}
	if err := ctx.Err(); err != nil {
		return batch, err
	}
	return batch, nil
}

// writeBack persists the retained queue items. Dry runs leave the queue
// untouched.
func (s *Saver) writeBack(ctx context.Context, remaining []clipvault.QueueItem, opts Options) error {
	if opts.DryRun {
		return nil
	}
	return s.Queue.Write(ctx, remaining)
}

// extract runs the primary extractor and falls back to the secondary when
// the primary errors or comes back empty. Never returns nil.
func (s *Saver) extract(html string) *clipvault.ExtractResult {
	primary, err := s.Extractor.Extract(html)
	if err == nil && utf8.RuneCountInString(primary.TextContent) >= s.minContentLength() {
		return primary
	}
	if err != nil {
		primary = &clipvault.ExtractResult{}
	}

	if s.Fallback != nil {
		secondary, err := s.Fallback.Extract(html)
		if err == nil && utf8.RuneCountInString(secondary.TextContent) > utf8.RuneCountInString(primary.TextContent) {
			return secondary
		}
	}
	return primary
}

// tagsFor picks document tags: the explicit override wins, then derived
// keywords, then the sentinel tag. Keyword derivation is skipped for
// partial saves, which pass empty markdown.
func (s *Saver) tagsFor(markdown string, override []string) []string {
	if len(override) > 0 {
		return override
	}
	count := s.TagCount
	if count <= 0 {
		count = DefaultTagCount
	}
	if tags := clipvault.ExtractKeywords(markdown, count, s.stopwords()); len(tags) > 0 {
		return tags
	}
	return []string{SentinelTag}
}

// summarize asks the optional Summarizer for an abstract. Failures drop the
// summary and never fail the save.
func (s *Saver) summarize(ctx context.Context, markdown, title string) string {
	if s.Summarizer == nil {
		return ""
	}
	summary, err := s.Summarizer.Summarize(ctx, markdown, title)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Debug("summarization skipped", "title", title, "error", err)
		}
		return ""
	}
	return summary
}

func (s *Saver) minContentLength() int {
	if s.MinContentLength > 0 {
		return s.MinContentLength
	}
	return DefaultMinContentLength
}

func (s *Saver) stopwords() map[string]struct{} {
	if s.Stopwords != nil {
		return s.Stopwords
	}
	return clipvault.DefaultStopwords()
}

func (s *Saver) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Saver) newID() string {
	if s.NewID != nil {
		return s.NewID()
	}
	return uuid.NewString()
}

func failure(url string, err error) Result {
	return Result{
		URL: url,
		Failure: &Failure{
			Code:    clipvault.ErrorCode(err),
			Message: clipvault.ErrorMessage(err),
		},
	}
}

// unusableStatus reports statuses that cannot yield a document at all.
func unusableStatus(status int) (bool, string) {
	switch {
	case status == http.StatusNotFound || status == http.StatusGone:
		return true, fmt.Sprintf("HTTP %d (page not found)", status)
	case status >= 500:
		return true, fmt.Sprintf("HTTP %d (server error)", status)
	}
	return false, ""
}

// restrictedStatus reports statuses where the page exists but access is
// limited; these route to the partial branch.
func restrictedStatus(status int) bool {
	switch status {
	case http.StatusUnauthorized,
		http.StatusPaymentRequired,
		http.StatusForbidden,
		http.StatusTooManyRequests,
		http.StatusUnavailableForLegalReasons:
		return true
	}
	return false
}

// hasPartialMetadata reports whether enough was recovered for a partial
// save. With no title, no text, and no excerpt there is nothing to persist.
func hasPartialMetadata(extracted *clipvault.ExtractResult, meta *clipvault.PageMeta) bool {
	return extracted.Title != "" || extracted.TextContent != "" ||
		extracted.Excerpt != "" || meta.BestTitle() != ""
}

// partialContent assembles the best available body for a partial save.
func partialContent(extracted *clipvault.ExtractResult) string {
	if extracted.TextContent != "" {
		return extracted.TextContent
	}
	if extracted.Excerpt != "" {
		return extracted.Excerpt
	}
	return "*No article content could be extracted.*"
}

// partialWarning describes the likely cause of a partial save.
func partialWarning(status int) string {
	if restrictedStatus(status) {
		return fmt.Sprintf("content may be incomplete: access restricted (HTTP %d), possible paywall", status)
	}
	return "content may be incomplete: extraction recovered very little text, possible paywall or script-rendered page"
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
