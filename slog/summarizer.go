package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/digest"
)

// Ensure LoggingSummarizer implements digest.Summarizer.
var _ digest.Summarizer = (*LoggingSummarizer)(nil)

// LoggingSummarizer wraps a Summarizer with logging. The API key is never
// logged.
type LoggingSummarizer struct {
	next     digest.Summarizer
	provider string
	logger   *slog.Logger
}

// NewLoggingSummarizer creates a new LoggingSummarizer.
func NewLoggingSummarizer(next digest.Summarizer, provider string, logger *slog.Logger) *LoggingSummarizer {
	return &LoggingSummarizer{next: next, provider: provider, logger: logger}
}

// Summarize logs the call and delegates to the wrapped summarizer.
func (s *LoggingSummarizer) Summarize(ctx context.Context, docs []*digest.Document, opts digest.SummarizeOptions) (summary string, err error) {
	defer func(begin time.Time) {
		withRequest(ctx, s.logger).Info("summarize",
			"provider", s.provider,
			"model", opts.Model,
			"docs", len(docs),
			"chars", contentLength(docs),
			"summary_chars", len(summary),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Summarize(ctx, docs, opts)
}
