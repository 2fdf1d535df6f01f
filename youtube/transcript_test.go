package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPickTrack(t *testing.T) {
	t.Parallel()

	manualEN := captionTrack{BaseURL: "https://x/en", LanguageCode: "en"}
	autoEN := captionTrack{BaseURL: "https://x/en-asr", LanguageCode: "en", Kind: "asr"}
	manualDE := captionTrack{BaseURL: "https://x/de", LanguageCode: "de"}
	enGB := captionTrack{BaseURL: "https://x/en-gb", LanguageCode: "en-GB"}
	locked := captionTrack{BaseURL: "https://x/en?a=1&exp=xpe", LanguageCode: "en"}

	tests := []struct {
		name   string
		tracks []captionTrack
		langs  []string
		want   captionTrack
		wantOK bool
	}{
		{"manual over auto", []captionTrack{autoEN, manualEN}, []string{"en"}, manualEN, true},
		{"auto in preferred language", []captionTrack{manualDE, autoEN}, []string{"en"}, autoEN, true},
		{"language order wins", []captionTrack{manualEN, manualDE}, []string{"de", "en"}, manualDE, true},
		{"any english variant", []captionTrack{manualDE, enGB}, []string{"fr"}, enGB, true},
		{"first usable otherwise", []captionTrack{locked, manualDE}, []string{"fr"}, manualDE, true},
		{"all locked", []captionTrack{locked}, []string{"en"}, captionTrack{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := pickTrack(tt.tracks, tt.langs)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	t.Parallel()

	t.Run("stops at balanced brace", func(t *testing.T) {
		t.Parallel()

		got := extractJSON([]byte(`{"a":{"b":1}};var x = {}`))
		assert.Equal(t, `{"a":{"b":1}}`, string(got))
	})

	t.Run("ignores braces in strings", func(t *testing.T) {
		t.Parallel()

		got := extractJSON([]byte(`{"a":"}{\"}","b":2} trailing`))
		assert.Equal(t, `{"a":"}{\"}","b":2}`, string(got))
	})

	t.Run("returns nil for non-object", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, extractJSON([]byte(`[1,2]`)))
		assert.Nil(t, extractJSON([]byte(`{"open":`)))
	})
}

func TestParseTimedText(t *testing.T) {
	t.Parallel()

	t.Run("parses srv3 format", func(t *testing.T) {
		t.Parallel()

		xml := `<?xml version="1.0" encoding="utf-8" ?>
<timedtext format="3"><body>
<p t="0" d="1000"><s>Hello</s><s t="400"> there</s></p>
<p t="1000" d="900">general &amp;amp; kenobi</p>
</body></timedtext>`

		got, err := parseTimedText([]byte(xml))
		require.NoError(t, err)
		assert.Equal(t, "Hello there general & kenobi", got)
	})

	t.Run("rejects malformed XML", func(t *testing.T) {
		t.Parallel()

		_, err := parseTimedText([]byte(`<<not xml`))
		require.Error(t, err)
	})
}
