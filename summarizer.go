package digest

import (
	"context"
	"strings"
	"text/template"
)

// SummaryPromptTemplate is the single prompt sent to the model. The Text
// slot receives every acquired document via StuffDocuments.
const SummaryPromptTemplate = `Provide a summary of the following content in 300 words:
Content: {{.Text}}
`

var summaryPrompt = template.Must(template.New("summary").Parse(SummaryPromptTemplate))

// SummarizeOptions carries the per-request model selection and credential.
type SummarizeOptions struct {
	APIKey string
	Model  string
}

// Summarizer produces an abstractive summary of documents with a hosted LLM.
type Summarizer interface {
	// Summarize stuffs all documents into one prompt and makes a single
	// model call. No chunking, retry or streaming takes place.
	Summarize(ctx context.Context, docs []*Document, opts SummarizeOptions) (string, error)
}

// BuildSummaryPrompt renders the summary prompt for docs.
// Returns EINVALID if the documents carry no text.
func BuildSummaryPrompt(docs []*Document) (string, error) {
	text := StuffDocuments(docs)
	if strings.TrimSpace(text) == "" {
		return "", Errorf(EINVALID, "no content to summarize")
	}

	var sb strings.Builder
	if err := summaryPrompt.Execute(&sb, struct{ Text string }{Text: text}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
