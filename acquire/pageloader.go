package acquire

import (
	"context"
	"strings"

	"github.com/fwojciec/digest"
)

// Ensure PageLoader implements digest.PageLoader at compile time.
var _ digest.PageLoader = (*PageLoader)(nil)

// PageLoader implements digest.PageLoader by chaining a fetcher, an
// extractor and a converter. The same type backs the static and the
// browser loader; only the Fetcher differs.
type PageLoader struct {
	Fetcher   digest.Fetcher
	Extractor digest.Extractor
	Converter digest.Converter
}

// LoadPage fetches url and returns at most one document. A page whose main
// content is blank yields no documents and no error.
func (l *PageLoader) LoadPage(ctx context.Context, url string, opts digest.FetchOptions) ([]*digest.Document, error) {
	html, err := l.Fetcher.Fetch(ctx, url, opts)
	if err != nil {
		return nil, err
	}

	result, err := l.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(result.ContentHTML) == "" {
		return nil, nil
	}

	content, err := l.Converter.Convert(result.ContentHTML)
	if err != nil {
		return nil, err
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, nil
	}

	meta := map[string]string{digest.MetaSource: url}
	if result.Title != "" {
		meta[digest.MetaTitle] = result.Title
	}
	if result.Description != "" {
		meta[digest.MetaDescription] = result.Description
	}
	if result.Author != "" {
		meta[digest.MetaAuthor] = result.Author
	}
	if result.Language != "" {
		meta[digest.MetaLanguage] = result.Language
	}

	return []*digest.Document{{
		SourceURL: url,
		Title:     result.Title,
		Content:   content,
		Metadata:  meta,
	}}, nil
}
