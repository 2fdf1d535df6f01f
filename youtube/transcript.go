package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/beevik/etree"
)

const (
	// userAgent is sent with watch page and caption requests.
	userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 13_5_1) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/116.0.0.0 Safari/537.36"

	maxWatchPageSize = 6 << 20
	maxCaptionSize   = 2 << 20
)

// playerResponseMarker precedes the player JSON in watch page HTML.
var playerResponseMarker = []byte("ytInitialPlayerResponse = ")

var (
	errNoPlayerResponse = errors.New("player response not found in watch page")
	errNoCaptions       = errors.New("video has no captions")
)

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
	PlayabilityStatus *struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

// transcript scrapes the watch page for caption tracks and returns the text
// of the best one.
func (l *VideoLoader) transcript(ctx context.Context, id string) (string, error) {
	body, err := l.get(ctx, l.baseURL()+"/watch?v="+url.QueryEscape(id), maxWatchPageSize)
	if err != nil {
		return "", fmt.Errorf("watch page: %w", err)
	}

	tracks, err := captionTracks(body)
	if err != nil {
		return "", err
	}

	track, ok := pickTrack(tracks, l.Languages)
	if !ok {
		return "", errors.New("all caption tracks require a browser session")
	}

	xml, err := l.get(ctx, track.BaseURL, maxCaptionSize)
	if err != nil {
		return "", fmt.Errorf("caption track: %w", err)
	}

	text, err := parseTimedText(xml)
	if err != nil {
		return "", err
	}
	if text == "" {
		return "", errNoCaptions
	}
	return text, nil
}

func (l *VideoLoader) get(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	// Skips the EU cookie consent interstitial.
	req.AddCookie(&http.Cookie{Name: "CONSENT", Value: "YES+"})

	resp, err := l.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

// captionTracks extracts the caption track list from watch page HTML.
func captionTracks(page []byte) ([]captionTrack, error) {
	idx := bytes.Index(page, playerResponseMarker)
	if idx < 0 {
		return nil, errNoPlayerResponse
	}
	raw := extractJSON(page[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, errNoPlayerResponse
	}

	var pr playerResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("decoding player response: %w", err)
	}
	if pr.Captions == nil || len(pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		if pr.PlayabilityStatus != nil && pr.PlayabilityStatus.Reason != "" {
			return nil, fmt.Errorf("%w: %s", errNoCaptions, pr.PlayabilityStatus.Reason)
		}
		return nil, errNoCaptions
	}
	return pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks, nil
}

// extractJSON returns the balanced JSON object at the start of b, or nil.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}
	depth := 0
	inStr, escaped := false, false
	for i, c := range b {
		switch {
		case escaped:
			escaped = false
		case inStr && c == '\\':
			escaped = true
		case c == '"':
			inStr = !inStr
		case inStr:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// needsPoToken reports whether a caption URL can only be fetched by a
// browser holding a proof-of-origin token.
func needsPoToken(baseURL string) bool {
	return strings.Contains(baseURL, "&exp=xpe")
}

// pickTrack prefers a manual track in a preferred language, then an
// auto-generated one, then any English track, then the first usable track.
func pickTrack(tracks []captionTrack, langs []string) (captionTrack, bool) {
	usable := make([]captionTrack, 0, len(tracks))
	for _, t := range tracks {
		if !needsPoToken(t.BaseURL) {
			usable = append(usable, t)
		}
	}
	if len(usable) == 0 {
		return captionTrack{}, false
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range usable {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, t := range usable {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return t, true
		}
	}
	return usable[0], true
}

// parseTimedText joins the cue text of a timedtext XML document. Both the
// legacy <text> format and the srv3 <p> format are accepted.
func parseTimedText(data []byte) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return "", fmt.Errorf("parsing caption XML: %w", err)
	}

	cues := doc.FindElements("//text")
	if len(cues) == 0 {
		cues = doc.FindElements("//p")
	}

	parts := make([]string, 0, len(cues))
	for _, cue := range cues {
		// Cue text is entity-escaped a second time inside the XML.
		text := html.UnescapeString(cueText(cue))
		text = strings.Join(strings.Fields(text), " ")
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, " "), nil
}

// cueText returns the character data of e including nested <s> segments.
func cueText(e *etree.Element) string {
	var sb strings.Builder
	for _, tok := range e.Child {
		switch t := tok.(type) {
		case *etree.CharData:
			sb.WriteString(t.Data)
		case *etree.Element:
			sb.WriteString(cueText(t))
		}
	}
	return sb.String()
}
