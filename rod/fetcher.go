package rod

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/fwojciec/digest"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout bounds a single page render.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements digest.Fetcher at compile time.
var _ digest.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// The browser is launched on first use, so constructing a Fetcher is cheap
// when no page ever needs rendering.
//
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	manager *BrowserManager
	timeout time.Duration
	mgrOpts []ManagerOption
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the per-page render timeout.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithManagerOptions passes options through to the underlying BrowserManager.
func WithManagerOptions(opts ...ManagerOption) Option {
	return func(f *Fetcher) {
		f.mgrOpts = append(f.mgrOpts, opts...)
	}
}

// NewFetcher creates a new Fetcher. Close must be called when the Fetcher is
// no longer needed.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}
	f.manager = NewBrowserManager(f.mgrOpts...)
	return f
}

// Fetch navigates to the URL and returns the rendered HTML. Custom headers
// in opts are sent with the navigation request. InsecureSkipVerify is not
// honored: certificate handling belongs to the browser.
func (f *Fetcher) Fetch(ctx context.Context, url string, opts digest.FetchOptions) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	browser, err := f.manager.Acquire()
	if err != nil {
		return "", err
	}
	defer f.manager.Release()

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("opening page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if len(opts.Headers) > 0 {
		var pairs []string
		for _, k := range slices.Sorted(maps.Keys(opts.Headers)) {
			pairs = append(pairs, k, opts.Headers[k])
		}
		cleanup, err := page.SetExtraHeaders(pairs)
		if err != nil {
			return "", fmt.Errorf("setting headers: %w", err)
		}
		defer cleanup()
	}

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigating to %s: %w", url, err)
	}

	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("waiting for %s: %w", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", url, err)
	}

	return html, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	return f.manager.Close()
}

// Launched reports whether a browser has been started.
func (f *Fetcher) Launched() bool {
	return f.manager.Launched()
}

// LauncherPID returns the process ID of the browser launcher, or 0 if the
// browser is not running.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}
