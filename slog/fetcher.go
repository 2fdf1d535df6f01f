package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/digest"
)

// Ensure LoggingFetcher implements digest.Fetcher.
var _ digest.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging.
type LoggingFetcher struct {
	next   digest.Fetcher
	name   string
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher. name distinguishes the
// static fetcher from the browser in log output.
func NewLoggingFetcher(next digest.Fetcher, name string, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, name: name, logger: logger}
}

// Fetch logs the URL being fetched and delegates to the wrapped fetcher.
// Header values are not logged.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string, opts digest.FetchOptions) (html string, err error) {
	defer func(begin time.Time) {
		withRequest(ctx, f.logger).Info("fetch",
			"fetcher", f.name,
			"url", url,
			"insecure", opts.InsecureSkipVerify,
			"headers", len(opts.Headers),
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url, opts)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
