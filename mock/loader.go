package mock

import (
	"context"

	"github.com/fwojciec/digest"
)

var (
	_ digest.PageLoader  = (*PageLoader)(nil)
	_ digest.VideoLoader = (*VideoLoader)(nil)
)

// PageLoader is a mock implementation of digest.PageLoader.
type PageLoader struct {
	LoadPageFn func(ctx context.Context, url string, opts digest.FetchOptions) ([]*digest.Document, error)
}

func (l *PageLoader) LoadPage(ctx context.Context, url string, opts digest.FetchOptions) ([]*digest.Document, error) {
	return l.LoadPageFn(ctx, url, opts)
}

// VideoLoader is a mock implementation of digest.VideoLoader.
type VideoLoader struct {
	LoadVideoFn func(ctx context.Context, url string, withInfo bool) ([]*digest.Document, error)
}

func (l *VideoLoader) LoadVideo(ctx context.Context, url string, withInfo bool) ([]*digest.Document, error) {
	return l.LoadVideoFn(ctx, url, withInfo)
}
