package groq_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/groq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docs = []*digest.Document{
	{Content: "Part one."},
	{Content: "Part two."},
}

const completion = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "llama-3.1-8b-instant",
  "choices": [{
    "index": 0,
    "message": {"role": "assistant", "content": "  A tidy summary.  "},
    "finish_reason": "stop"
  }]
}`

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("sends stuffed prompt and returns trimmed summary", func(t *testing.T) {
		t.Parallel()

		var got chatRequest
		var auth, path string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth = r.Header.Get("Authorization")
			path = r.URL.Path
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completion))
		}))
		defer srv.Close()

		s := &groq.Summarizer{BaseURL: srv.URL + "/", DefaultModel: groq.DefaultModel}

		summary, err := s.Summarize(context.Background(), docs, digest.SummarizeOptions{APIKey: "gsk-test"})

		require.NoError(t, err)
		assert.Equal(t, "A tidy summary.", summary)
		assert.Equal(t, "Bearer gsk-test", auth)
		assert.Equal(t, "/chat/completions", path)
		assert.Equal(t, groq.DefaultModel, got.Model)
		require.Len(t, got.Messages, 1)
		assert.Equal(t, "user", got.Messages[0].Role)
		assert.Equal(t, "Provide a summary of the following content in 300 words:\nContent: Part one.\n\nPart two.\n", got.Messages[0].Content)
	})

	t.Run("uses requested model", func(t *testing.T) {
		t.Parallel()

		var got chatRequest
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(completion))
		}))
		defer srv.Close()

		s := &groq.Summarizer{BaseURL: srv.URL + "/", DefaultModel: groq.DefaultModel}

		_, err := s.Summarize(context.Background(), docs, digest.SummarizeOptions{APIKey: "k", Model: "gemma2-9b-it"})

		require.NoError(t, err)
		assert.Equal(t, "gemma2-9b-it", got.Model)
	})

	t.Run("does not retry failed calls", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"error":{"message":"over capacity","type":"server_error"}}`))
		}))
		defer srv.Close()

		s := &groq.Summarizer{BaseURL: srv.URL + "/"}

		_, err := s.Summarize(context.Background(), docs, digest.SummarizeOptions{APIKey: "k", Model: "m"})

		require.Error(t, err)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("rejects empty completion", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","created":1,"model":"m","choices":[]}`))
		}))
		defer srv.Close()

		s := &groq.Summarizer{BaseURL: srv.URL + "/"}

		_, err := s.Summarize(context.Background(), docs, digest.SummarizeOptions{APIKey: "k", Model: "m"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := groq.NewSummarizer().Summarize(context.Background(), docs, digest.SummarizeOptions{})

		require.Error(t, err)
		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})

	t.Run("rejects blank documents before calling the API", func(t *testing.T) {
		t.Parallel()

		_, err := groq.NewSummarizer().Summarize(context.Background(), []*digest.Document{{Content: " "}}, digest.SummarizeOptions{APIKey: "k"})

		require.Error(t, err)
		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})
}
