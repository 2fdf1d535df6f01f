package readability

import (
	"strings"

	"github.com/fwojciec/digest"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*digest.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &digest.ExtractResult{
		Title:       strings.TrimSpace(article.Title),
		Description: strings.TrimSpace(article.Excerpt),
		Author:      strings.TrimSpace(article.Byline),
		Language:    article.Language,
		ContentHTML: article.Content,
	}, nil
}
