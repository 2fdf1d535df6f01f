package digest

import "context"

// PageLoader turns a web page URL into documents.
type PageLoader interface {
	// LoadPage fetches and extracts the page. An empty, error-free result
	// means the page had no extractable text.
	LoadPage(ctx context.Context, url string, opts FetchOptions) ([]*Document, error)
}

// VideoLoader turns a video URL into documents built from its transcript.
type VideoLoader interface {
	// LoadVideo loads the transcript. When withInfo is set the documents
	// also carry video metadata (title, author, length, ...), which needs
	// an extra lookup that may fail on its own.
	LoadVideo(ctx context.Context, url string, withInfo bool) ([]*Document, error)
}

// Acquirer picks and sequences loaders for a URL.
type Acquirer interface {
	// Acquire returns at least one non-empty document or an EACQUIRE error.
	Acquire(ctx context.Context, url string) ([]*Document, error)
}
