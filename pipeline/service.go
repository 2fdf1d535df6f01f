// Package pipeline wires validation, content acquisition and summarization
// into a digest.Service.
package pipeline

import (
	"context"

	"github.com/fwojciec/digest"
)

// Ensure Service implements digest.Service at compile time.
var _ digest.Service = (*Service)(nil)

// Service runs one request through the pipeline. It holds no per-request
// state; everything request-specific travels in the digest.Request.
type Service struct {
	Validator  digest.URLValidator
	Acquirer   digest.Acquirer
	Summarizer digest.Summarizer
}

// Digest validates req, acquires the content behind req.URL and returns its
// summary. Validation failures stop the pipeline before any network call.
func (s *Service) Digest(ctx context.Context, req *digest.Request) (string, error) {
	if err := req.Validate(s.Validator); err != nil {
		return "", err
	}

	docs, err := s.Acquirer.Acquire(ctx, req.URL)
	if err != nil {
		if digest.ErrorCode(err) == digest.EACQUIRE {
			return "", err
		}
		return "", digest.WrapError(digest.EACQUIRE, err, "failed to load %s", req.URL)
	}
	docs = digest.NonEmpty(docs)
	if len(docs) == 0 {
		return "", digest.Errorf(digest.EACQUIRE, "no content found at %s", req.URL)
	}

	summary, err := s.Summarizer.Summarize(ctx, docs, digest.SummarizeOptions{
		APIKey: req.APIKey,
		Model:  req.Model,
	})
	if err != nil {
		return "", digest.WrapError(digest.ESUMMARIZE, err, "failed to summarize")
	}
	return summary, nil
}
