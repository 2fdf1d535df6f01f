package youtube

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/digest"
	"github.com/kkdai/youtube/v2"
)

// DefaultBaseURL is the origin serving watch pages.
const DefaultBaseURL = "https://www.youtube.com"

// publishDateLayout formats the publish_date metadata value.
const publishDateLayout = "2006-01-02 15:04:05"

// videoIDPattern matches a YouTube video ID. ExtractVideoID also returns
// host fragments such as "www.youtube" for channel and feed URLs.
var videoIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// Ensure VideoLoader implements digest.VideoLoader at compile time.
var _ digest.VideoLoader = (*VideoLoader)(nil)

// MetadataClient looks up video details. *youtube.Client satisfies it.
type MetadataClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
}

// VideoLoader turns a YouTube video into a single document whose content is
// the video's caption transcript.
type VideoLoader struct {
	// Metadata supplies title, author and the other video details when
	// LoadVideo is called with withInfo.
	Metadata MetadataClient

	// HTTPClient fetches the watch page and caption track.
	HTTPClient *http.Client

	// BaseURL is the watch page origin. Defaults to DefaultBaseURL.
	BaseURL string

	// Languages lists preferred caption languages in order.
	Languages []string
}

// NewVideoLoader returns a VideoLoader backed by kkdai/youtube for metadata.
func NewVideoLoader(client *http.Client) *VideoLoader {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &VideoLoader{
		Metadata:   &youtube.Client{HTTPClient: client},
		HTTPClient: client,
		BaseURL:    DefaultBaseURL,
		Languages:  []string{"en"},
	}
}

// LoadVideo returns the transcript of the video at url. With withInfo set the
// document also carries the video's metadata, and a metadata lookup failure
// fails the whole load.
func (l *VideoLoader) LoadVideo(ctx context.Context, url string, withInfo bool) ([]*digest.Document, error) {
	id, err := youtube.ExtractVideoID(url)
	if err != nil || !videoIDPattern.MatchString(id) {
		return nil, digest.Errorf(digest.EINVALID, "not a video URL: %s", url)
	}

	meta := map[string]string{digest.MetaSource: id}
	var title string

	if withInfo {
		v, err := l.Metadata.GetVideoContext(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("fetching video info for %s: %w", id, err)
		}
		title = v.Title
		addVideoInfo(meta, v)
	}

	text, err := l.transcript(ctx, id)
	if err != nil {
		return nil, err
	}

	return []*digest.Document{{
		SourceURL: url,
		Title:     title,
		Content:   text,
		Metadata:  meta,
	}}, nil
}

func addVideoInfo(meta map[string]string, v *youtube.Video) {
	meta[digest.MetaTitle] = v.Title
	meta[digest.MetaDescription] = v.Description
	meta[digest.MetaAuthor] = v.Author
	meta[digest.MetaViewCount] = strconv.Itoa(v.Views)
	meta[digest.MetaLength] = strconv.Itoa(int(v.Duration.Seconds()))
	if !v.PublishDate.IsZero() {
		meta[digest.MetaPublishDate] = v.PublishDate.Format(publishDateLayout)
	}
	if n := len(v.Thumbnails); n > 0 {
		meta[digest.MetaThumbnailURL] = v.Thumbnails[n-1].URL
	}
}

func (l *VideoLoader) baseURL() string {
	if l.BaseURL == "" {
		return DefaultBaseURL
	}
	return strings.TrimRight(l.BaseURL, "/")
}

func (l *VideoLoader) httpClient() *http.Client {
	if l.HTTPClient == nil {
		return http.DefaultClient
	}
	return l.HTTPClient
}
