package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fwojciec/digest"
	"github.com/fwojciec/digest/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var docs = []*digest.Document{{Content: "Part one."}, {Content: "Part two."}}

type generateRequest struct {
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
}

func newGeminiServer(t *testing.T, status int, body string, got *generateRequest, path *string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if path != nil {
			*path = r.URL.Path
		}
		if got != nil {
			_ = json.NewDecoder(r.Body).Decode(got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestSummarizer_Summarize(t *testing.T) {
	t.Parallel()

	t.Run("sends stuffed prompt and returns summary", func(t *testing.T) {
		t.Parallel()

		var got generateRequest
		var path string
		srv := newGeminiServer(t, http.StatusOK,
			`{"candidates":[{"content":{"role":"model","parts":[{"text":"Gemini summary.\n"}]},"finishReason":"STOP"}]}`,
			&got, &path)

		s := &gemini.Summarizer{DefaultModel: gemini.DefaultModel, BaseURL: srv.URL, HTTPClient: srv.Client()}

		summary, err := s.Summarize(context.Background(), docs, digest.SummarizeOptions{APIKey: "g-key"})

		require.NoError(t, err)
		assert.Equal(t, "Gemini summary.", summary)
		assert.Contains(t, path, "models/"+gemini.DefaultModel+":generateContent")
		require.Len(t, got.Contents, 1)
		require.Len(t, got.Contents[0].Parts, 1)
		assert.Equal(t, "Provide a summary of the following content in 300 words:\nContent: Part one.\n\nPart two.\n", got.Contents[0].Parts[0].Text)
	})

	t.Run("uses requested model", func(t *testing.T) {
		t.Parallel()

		var path string
		srv := newGeminiServer(t, http.StatusOK,
			`{"candidates":[{"content":{"role":"model","parts":[{"text":"ok"}]}}]}`,
			nil, &path)

		s := &gemini.Summarizer{DefaultModel: gemini.DefaultModel, BaseURL: srv.URL, HTTPClient: srv.Client()}

		_, err := s.Summarize(context.Background(), docs, digest.SummarizeOptions{APIKey: "k", Model: "gemini-2.5-pro"})

		require.NoError(t, err)
		assert.Contains(t, path, "models/gemini-2.5-pro:generateContent")
	})

	t.Run("returns API errors", func(t *testing.T) {
		t.Parallel()

		srv := newGeminiServer(t, http.StatusBadRequest,
			`{"error":{"code":400,"message":"API key not valid","status":"INVALID_ARGUMENT"}}`,
			nil, nil)

		s := &gemini.Summarizer{DefaultModel: gemini.DefaultModel, BaseURL: srv.URL, HTTPClient: srv.Client()}

		_, err := s.Summarize(context.Background(), docs, digest.SummarizeOptions{APIKey: "bad"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "API key not valid")
	})

	t.Run("requires API key", func(t *testing.T) {
		t.Parallel()

		_, err := gemini.NewSummarizer().Summarize(context.Background(), docs, digest.SummarizeOptions{})

		require.Error(t, err)
		assert.Equal(t, digest.EINVALID, digest.ErrorCode(err))
	})
}
