package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/digest"
)

// Ensure Extractor implements digest.Extractor at compile time.
var _ digest.Extractor = (*Extractor)(nil)

// noiseSelector matches elements that never carry page text.
const noiseSelector = "script, style, noscript, template, iframe, svg, canvas, " +
	"[role=navigation], [role=banner], [role=contentinfo], [aria-hidden=true]"

// chromeSelector matches site chrome removed when StripChrome is set.
const chromeSelector = "header, footer, nav, aside"

// Extractor returns the visible body of a page with only scripts and other
// non-text elements removed. Unlike a readability extractor it keeps the
// whole page, which suits JavaScript-rendered sites whose markup defeats
// article detection.
type Extractor struct {
	// StripChrome removes header, footer, nav and aside elements.
	StripChrome bool
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract parses rawHTML and returns the page body and metadata.
func (e *Extractor) Extract(rawHTML string) (*digest.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, digest.Errorf(digest.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &digest.ExtractResult{
		Title:       title(doc),
		Description: metaContent(doc, `meta[name="description"]`, `meta[property="og:description"]`),
		Author:      metaContent(doc, `meta[name="author"]`),
		Language:    strings.TrimSpace(doc.Find("html").AttrOr("lang", "")),
	}

	body := doc.Find("body")
	body.Find(noiseSelector).Remove()
	if e.StripChrome {
		body.Find(chromeSelector).Remove()
	}

	content, err := body.Html()
	if err != nil {
		return nil, err
	}
	result.ContentHTML = strings.TrimSpace(content)

	return result, nil
}

func title(doc *goquery.Document) string {
	if t := strings.TrimSpace(doc.Find("head title").First().Text()); t != "" {
		return t
	}
	return metaContent(doc, `meta[property="og:title"]`)
}

// metaContent returns the content attribute of the first matching selector
// that has one.
func metaContent(doc *goquery.Document, selectors ...string) string {
	for _, sel := range selectors {
		if v := strings.TrimSpace(doc.Find(sel).First().AttrOr("content", "")); v != "" {
			return v
		}
	}
	return ""
}
