package digest

import (
	"context"
	"strings"
)

// User-facing validation messages.
const (
	MsgAPIKeyRequired = "Please enter your API key to proceed."
	MsgURLRequired    = "Please enter a URL. It can be a YouTube video URL or website URL."
	MsgURLInvalid     = "Please enter a valid URL. It can be a YouTube video URL or website URL."
)

// Request is a single summarization request. It is built from user input
// for one action and discarded afterwards. APIKey is a secret and must
// never be logged or persisted.
type Request struct {
	APIKey string
	URL    string

	// Model overrides the summarizer's default model when set.
	Model string
}

// Validate checks the request in a fixed order: API key, URL presence,
// URL well-formedness. The first failure is returned as EINVALID.
func (r *Request) Validate(v URLValidator) error {
	if strings.TrimSpace(r.APIKey) == "" {
		return Errorf(EINVALID, MsgAPIKeyRequired)
	}
	if strings.TrimSpace(r.URL) == "" {
		return Errorf(EINVALID, MsgURLRequired)
	}
	if !v.Valid(r.URL) {
		return Errorf(EINVALID, MsgURLInvalid)
	}
	return nil
}

// URLValidator checks that a URL is well-formed (scheme and host present).
type URLValidator interface {
	Valid(url string) bool
}

// Service runs the whole pipeline for one request: validate, acquire
// content, summarize.
type Service interface {
	// Digest returns the summary for the request's URL.
	// Returns EINVALID before any network call if the request is invalid,
	// EACQUIRE if no content could be loaded and ESUMMARIZE if the model
	// call failed.
	Digest(ctx context.Context, req *Request) (string, error)
}
