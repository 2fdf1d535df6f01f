package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/digest"
)

// Ensure LoggingService implements digest.Service.
var _ digest.Service = (*LoggingService)(nil)

// LoggingService tags each request with an ID, shared through the context
// with the other logging decorators, and logs its outcome.
type LoggingService struct {
	next   digest.Service
	logger *slog.Logger
}

// NewLoggingService creates a new LoggingService.
func NewLoggingService(next digest.Service, logger *slog.Logger) *LoggingService {
	return &LoggingService{next: next, logger: logger}
}

// Digest logs the request URL, error code and duration. The API key is
// never logged.
func (s *LoggingService) Digest(ctx context.Context, req *digest.Request) (summary string, err error) {
	if RequestID(ctx) == "" {
		ctx = WithRequestID(ctx, NewRequestID())
	}

	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil && digest.ErrorCode(err) != digest.EINVALID {
			level = slog.LevelError
		}
		withRequest(ctx, s.logger).Log(ctx, level, "digest",
			"url", req.URL,
			"model", req.Model,
			"summary_chars", len(summary),
			"code", digest.ErrorCode(err),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Digest(ctx, req)
}
