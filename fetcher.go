package digest

import "context"

// FetchOptions tunes a single fetch.
type FetchOptions struct {
	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	// Headers are added to the outgoing request. Browser-based fetchers
	// ignore them.
	Headers map[string]string
}

// Fetcher retrieves HTML from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the URL and returns its HTML.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string, opts FetchOptions) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
