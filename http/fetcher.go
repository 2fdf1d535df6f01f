// Package http provides the HTTP side of digest: a static Fetcher for pages
// that don't require JavaScript rendering, and the web form Server.
package http

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/digest"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// Ensure Fetcher implements digest.Fetcher at compile time.
var _ digest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static sites only.
type Fetcher struct {
	client   *http.Client
	insecure *http.Client
	timeout  time.Duration
	maxBody  int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize sets the maximum number of body bytes read per response.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBody = n
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
		maxBody: DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	f.insecure = &http.Client{
		Timeout:   f.timeout,
		Transport: transport,
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
// opts.Headers are set on the request; opts.InsecureSkipVerify switches to a
// client that does not verify TLS certificates.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts digest.FetchOptions) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	client := f.client
	if opts.InsecureSkipVerify {
		client = f.insecure
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBody))
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases idle connections held by the fetcher's clients.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	f.insecure.CloseIdleConnections()
	return nil
}
