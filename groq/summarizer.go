package groq

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/fwojciec/digest"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	// DefaultBaseURL is Groq's OpenAI-compatible endpoint.
	DefaultBaseURL = "https://api.groq.com/openai/v1/"

	// DefaultModel is used when a request names no model.
	DefaultModel = "llama-3.1-8b-instant"
)

// Ensure Summarizer implements digest.Summarizer at compile time.
var _ digest.Summarizer = (*Summarizer)(nil)

// Summarizer implements digest.Summarizer against Groq's chat completions
// API. The API key arrives with each request, so a client is built per call.
type Summarizer struct {
	BaseURL      string
	DefaultModel string

	// HTTPClient overrides the transport. Nil uses the SDK default.
	HTTPClient *http.Client
}

// NewSummarizer returns a Summarizer for the public Groq endpoint.
func NewSummarizer() *Summarizer {
	return &Summarizer{
		BaseURL:      DefaultBaseURL,
		DefaultModel: DefaultModel,
	}
}

// Summarize sends one chat completion request containing the summary prompt.
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

	client := openai.NewClient(s.clientOptions(opts.APIKey)...)

	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("groq chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("groq returned no choices")
	}

	summary := strings.TrimSpace(resp.Choices[0].Message.Content)
	if summary == "" {
		return "", fmt.Errorf("groq returned an empty summary")
	}

	return summary, nil
}

func (s *Summarizer) clientOptions(apiKey string) []option.RequestOption {
	baseURL := s.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	opts := []option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}
	if s.HTTPClient != nil {
		opts = append(opts, option.WithHTTPClient(s.HTTPClient))
	}
	return opts
}
