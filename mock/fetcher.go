package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var _ digest.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of digest.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string, opts digest.FetchOptions) (string, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string, opts digest.FetchOptions) (string, error) {
	return f.FetchFn(ctx, url, opts)
}

func (f *Fetcher) Close() error {
	return f.CloseFn()
}
