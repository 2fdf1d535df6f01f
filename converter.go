package digest

// Converter turns clean HTML into the text handed to the summarizer.
type Converter interface {
	// Convert transforms HTML content into text.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
