package slog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/digest"
)

var (
	_ digest.PageLoader  = (*LoggingPageLoader)(nil)
	_ digest.VideoLoader = (*LoggingVideoLoader)(nil)
)

// LoggingPageLoader wraps a PageLoader with logging.
type LoggingPageLoader struct {
	next   digest.PageLoader
	name   string
	logger *slog.Logger
}

// NewLoggingPageLoader creates a new LoggingPageLoader.
func NewLoggingPageLoader(next digest.PageLoader, name string, logger *slog.Logger) *LoggingPageLoader {
	return &LoggingPageLoader{next: next, name: name, logger: logger}
}

// LoadPage logs document count, content size and a content hash, so two
// loads of the same page can be compared without logging the text itself.
func (l *LoggingPageLoader) LoadPage(ctx context.Context, url string, opts digest.FetchOptions) (docs []*digest.Document, err error) {
	defer func(begin time.Time) {
		withRequest(ctx, l.logger).Info("load page",
			"loader", l.name,
			"url", url,
			"docs", len(docs),
			"chars", contentLength(docs),
			"hash", contentHash(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadPage(ctx, url, opts)
}

// LoggingVideoLoader wraps a VideoLoader with logging.
type LoggingVideoLoader struct {
	next   digest.VideoLoader
	logger *slog.Logger
}

// NewLoggingVideoLoader creates a new LoggingVideoLoader.
func NewLoggingVideoLoader(next digest.VideoLoader, logger *slog.Logger) *LoggingVideoLoader {
	return &LoggingVideoLoader{next: next, logger: logger}
}

// LoadVideo logs the load and delegates to the wrapped loader.
func (l *LoggingVideoLoader) LoadVideo(ctx context.Context, url string, withInfo bool) (docs []*digest.Document, err error) {
	defer func(begin time.Time) {
		withRequest(ctx, l.logger).Info("load video",
			"url", url,
			"with_info", withInfo,
			"docs", len(docs),
			"chars", contentLength(docs),
			"hash", contentHash(docs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return l.next.LoadVideo(ctx, url, withInfo)
}

func contentLength(docs []*digest.Document) int {
	var n int
	for _, d := range docs {
		if d != nil {
			n += len(d.Content)
		}
	}
	return n
}

// contentHash returns a short hex digest of all document content, or "" if
// there is none.
func contentHash(docs []*digest.Document) string {
	if contentLength(docs) == 0 {
		return ""
	}
	h := xxhash.New()
	for _, d := range docs {
		if d != nil {
			_, _ = h.WriteString(d.Content)
		}
	}
	return fmt.Sprintf("%016x", h.Sum64())
}
