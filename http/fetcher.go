// Package http provides the HTTP implementation of clipvault.Fetcher.
package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/ewozniak/clipvault"
)

// DefaultFetchTimeout bounds a single article fetch. A request that neither
// succeeds nor fails within this window is reported as a timeout, never a
// hang.
const DefaultFetchTimeout = 15 * time.Second

// maxBodyBytes caps how much of a response body is read.
const maxBodyBytes = 10 << 20

// userAgent identifies the archiver to origin servers.
const userAgent = "clipvault/1.0 (+https://github.com/ewozniak/clipvault)"

// Ensure Fetcher implements clipvault.Fetcher at compile time.
var _ clipvault.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML using plain HTTP requests. Redirects are followed
// by the underlying client; the final URL is reported in the result.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch performs a GET against url. Transport failures return coded errors
// (ETIMEOUT for deadline overruns, EUNAVAILABLE otherwise); HTTP error
// statuses are reported in the result, since restricted pages still carry
// usable metadata.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*clipvault.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, clipvault.Errorf(clipvault.EINVALID, "cannot build request for %q", url)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, clipvault.Errorf(clipvault.ETIMEOUT, "fetch of %s timed out after %s", url, f.timeout)
		}
		return nil, clipvault.Errorf(clipvault.EUNAVAILABLE, "fetch of %s failed: %v", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, clipvault.Errorf(clipvault.ETIMEOUT, "fetch of %s timed out after %s", url, f.timeout)
		}
		return nil, clipvault.Errorf(clipvault.EUNAVAILABLE, "reading response from %s failed: %v", url, err)
	}

	finalURL := url
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &clipvault.FetchResult{
		StatusCode: resp.StatusCode,
		FinalURL:   finalURL,
		HTML:       string(body),
	}, nil
}

// Close releases resources. A no-op for the plain HTTP client.
func (f *Fetcher) Close() error {
	return nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
