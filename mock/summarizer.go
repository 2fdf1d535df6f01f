package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var _ digest.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of digest.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, docs []*digest.Document, opts digest.SummarizeOptions) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, docs []*digest.Document, opts digest.SummarizeOptions) (string, error) {
	return s.SummarizeFn(ctx, docs, opts)
}
