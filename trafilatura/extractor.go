package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/digest"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract the main article body of a page
// along with its title, description and author.
type Extractor struct {
	// KeepComments retains user comment sections in the extracted content.
	KeepComments bool
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*digest.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: !e.KeepComments,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &digest.ExtractResult{
		Title:       strings.TrimSpace(result.Metadata.Title),
		Description: strings.TrimSpace(result.Metadata.Description),
		Author:      strings.TrimSpace(result.Metadata.Author),
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
