package clipvault

import "context"

// FetchResult holds the raw outcome of retrieving a URL. A non-2xx status
// is reported here rather than as an error, because restricted pages
// (paywalls, consent walls) still carry recoverable metadata.
type FetchResult struct {
	// StatusCode is the final HTTP status after redirects.
	StatusCode int

	// FinalURL is the URL that actually served the response, after
	// redirects. May differ from the requested URL.
	FinalURL string

	// HTML is the response body. May be empty on error statuses.
	HTML string
}

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET and returns the response. It returns an
	// error only for transport failures: ETIMEOUT when the request
	// exceeded its deadline, EUNAVAILABLE for other network errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
