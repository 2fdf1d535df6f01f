package digest

import "strings"

// StuffDocuments concatenates the text of every document into a single
// string for the one-shot summary prompt. Documents are separated by blank
// lines and blank documents are skipped. No truncation is applied.
func StuffDocuments(docs []*Document) string {
	if len(docs) == 0 {
		return ""
	}

	parts := make([]string, 0, len(docs))
	for _, doc := range docs {
		if doc.IsEmpty() {
			continue
		}
		parts = append(parts, doc.Content)
	}

	return strings.Join(parts, "\n\n")
}
