package gemini

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/digest"
	"google.golang.org/genai"
)

// DefaultModel is used when a request names no model.
const DefaultModel = "gemini-2.5-flash"

// Ensure Summarizer implements digest.Summarizer at compile time.
var _ digest.Summarizer = (*Summarizer)(nil)

// Summarizer implements digest.Summarizer using Google Gemini.
type Summarizer struct {
	DefaultModel string

	// BaseURL and HTTPClient override the Gemini API endpoint and transport.
	BaseURL    string
	HTTPClient *http.Client
}

// NewSummarizer creates a new Summarizer.
func NewSummarizer() *Summarizer {
	return &Summarizer{DefaultModel: DefaultModel}
}

// Summarize makes a single GenerateContent call with the summary prompt.
func (s *Summarizer) Summarize(ctx context.Context, docs []*digest.Document, opts digest.SummarizeOptions) (string, error) {
	if opts.APIKey == "" {
		return "", digest.Errorf(digest.EINVALID, "API key required")
	}

	prompt, err := digest.BuildSummaryPrompt(docs)
	if err != nil {
		return "", err
	}

	model := opts.Model
	if model == "" {
		model = s.DefaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      opts.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPClient:  s.HTTPClient,
		HTTPOptions: genai.HTTPOptions{BaseURL: s.BaseURL},
	})
	if err != nil {
		return "", fmt.Errorf("creating gemini client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if result == nil {
		return "", digest.Errorf(digest.EINTERNAL, "gemini returned nil result")
	}

	summary := strings.TrimSpace(result.Text())
	if summary == "" {
		return "", fmt.Errorf("gemini returned an empty summary")
	}

	return summary, nil
}
