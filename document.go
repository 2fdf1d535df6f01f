package digest

import "strings"

// Metadata keys set by loaders. Video loaders use the same keys as the
// YouTube watch page exposes them.
const (
	MetaSource       = "source"
	MetaTitle        = "title"
	MetaDescription  = "description"
	MetaAuthor       = "author"
	MetaViewCount    = "view_count"
	MetaThumbnailURL = "thumbnail_url"
	MetaPublishDate  = "publish_date"
	MetaLength       = "length"
	MetaLanguage     = "language"
)

// Document is the text extracted from a single source URL plus optional
// metadata. Documents live for one request and are never stored.
type Document struct {
	SourceURL string            `json:"sourceUrl"`
	Title     string            `json:"title"`
	Content   string            `json:"content"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// IsEmpty reports whether the document carries no usable text.
func (d *Document) IsEmpty() bool {
	return d == nil || strings.TrimSpace(d.Content) == ""
}

// NonEmpty returns the documents that carry text, preserving order.
func NonEmpty(docs []*Document) []*Document {
	var out []*Document
	for _, doc := range docs {
		if !doc.IsEmpty() {
			out = append(out, doc)
		}
	}
	return out
}
