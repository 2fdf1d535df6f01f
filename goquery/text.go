package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/digest"
	"golang.org/x/net/html"
)

// Ensure TextConverter implements digest.Converter at compile time.
var _ digest.Converter = (*TextConverter)(nil)

// blockSelector matches elements that start a new line of text.
const blockSelector = "p, div, section, article, main, li, tr, br, " +
	"h1, h2, h3, h4, h5, h6, pre, blockquote, dt, dd, figcaption"

// TextConverter turns HTML into plain text with one line per block element
// and collapsed whitespace.
type TextConverter struct{}

// NewTextConverter creates a new TextConverter.
func NewTextConverter() *TextConverter {
	return &TextConverter{}
}

// Convert returns the visible text of rawHTML.
func (c *TextConverter) Convert(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", digest.Errorf(digest.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", digest.Errorf(digest.EINVALID, "failed to parse HTML: %v", err)
	}

	doc.Find(noiseSelector).Remove()
	doc.Find(blockSelector).Each(func(_ int, s *goquery.Selection) {
		s.BeforeNodes(newline())
		s.AfterNodes(newline())
	})

	var lines []string
	for _, line := range strings.Split(doc.Text(), "\n") {
		line = strings.Join(strings.Fields(line), " ")
		if line != "" {
			lines = append(lines, line)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func newline() *html.Node {
	return &html.Node{Type: html.TextNode, Data: "\n"}
}
