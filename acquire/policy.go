// Package acquire implements the content acquisition policy: which loaders
// run for a URL, in what order, and when the fallback kicks in.
package acquire

import (
	"context"
	"errors"
	"log/slog"

	"github.com/fwojciec/digest"
)

// DefaultUserAgent is the desktop browser User-Agent sent by the static
// loader to get past basic bot filtering.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 13_5_1) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"

// errEmptyContent marks a static load that succeeded but produced no text.
var errEmptyContent = errors.New("empty content detected")

// Ensure Policy implements digest.Acquirer at compile time.
var _ digest.Acquirer = (*Policy)(nil)

// StaticFetchOptions returns the options used for the first, static attempt
// on generic URLs: certificate verification off and a browser User-Agent.
func StaticFetchOptions() digest.FetchOptions {
	return digest.FetchOptions{
		InsecureSkipVerify: true,
		Headers: map[string]string{
			"User-Agent": DefaultUserAgent,
		},
	}
}

// Policy selects and sequences loaders for a URL.
//
// Video URLs are loaded with metadata first and retried once without it.
// Generic URLs are fetched statically first; an error or an empty result
// falls back to the browser loader. Attempts are never run in parallel and
// nothing is cached between calls.
type Policy struct {
	Video   digest.VideoLoader
	Static  digest.PageLoader
	Browser digest.PageLoader

	// StaticOptions overrides StaticFetchOptions for the static attempt.
	StaticOptions *digest.FetchOptions

	// Logger receives fallback notices. Optional.
	Logger *slog.Logger
}

// Acquire loads the documents for url.
func (p *Policy) Acquire(ctx context.Context, url string) ([]*digest.Document, error) {
	switch digest.Classify(url) {
	case digest.ClassificationVideoPlatform:
		return p.acquireVideo(ctx, url)
	default:
		return p.acquireGeneric(ctx, url)
	}
}

func (p *Policy) acquireVideo(ctx context.Context, url string) ([]*digest.Document, error) {
	docs, err := p.Video.LoadVideo(ctx, url, true)
	if err != nil {
		p.logger().Warn("video load with info failed, retrying without info",
			"url", url,
			"err", err,
		)
		docs, err = p.Video.LoadVideo(ctx, url, false)
		if err != nil {
			return nil, digest.WrapError(digest.EACQUIRE, err, "failed to load video %s", url)
		}
	}
	return requireContent(url, docs)
}

func (p *Policy) acquireGeneric(ctx context.Context, url string) ([]*digest.Document, error) {
	docs, err := p.Static.LoadPage(ctx, url, p.staticOptions())
	if err == nil {
		if docs = digest.NonEmpty(docs); len(docs) > 0 {
			return docs, nil
		}
		err = errEmptyContent
	}

	p.logger().Warn("static load failed, falling back to browser",
		"url", url,
		"err", err,
	)

	docs, err = p.Browser.LoadPage(ctx, url, digest.FetchOptions{})
	if err != nil {
		return nil, digest.WrapError(digest.EACQUIRE, err, "failed to load page %s", url)
	}
	return requireContent(url, docs)
}

func (p *Policy) staticOptions() digest.FetchOptions {
	if p.StaticOptions != nil {
		return *p.StaticOptions
	}
	return StaticFetchOptions()
}

func (p *Policy) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

// requireContent drops blank documents and fails if none are left.
func requireContent(url string, docs []*digest.Document) ([]*digest.Document, error) {
	docs = digest.NonEmpty(docs)
	if len(docs) == 0 {
		return nil, digest.WrapError(digest.EACQUIRE, errEmptyContent, "no content found at %s", url)
	}
	return docs, nil
}
