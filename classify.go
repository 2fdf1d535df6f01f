package digest

import "strings"

// VideoPlatformDomain is the substring that marks a URL as a video URL.
const VideoPlatformDomain = "youtube.com"

// Classification is the loader family chosen for a URL.
type Classification string

// Classification constants.
const (
	ClassificationVideoPlatform Classification = "video"
	ClassificationGeneric       Classification = "generic"
)

// Classify reports whether url points to the video platform.
// It is a plain substring check; well-formedness is checked separately
// by a URLValidator.
func Classify(url string) Classification {
	if strings.Contains(url, VideoPlatformDomain) {
		return ClassificationVideoPlatform
	}
	return ClassificationGeneric
}
