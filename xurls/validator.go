// Package xurls implements digest.URLValidator on top of mvdan.cc/xurls.
package xurls

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/fwojciec/digest"
	"mvdan.cc/xurls/v2"
)

// Ensure Validator implements digest.URLValidator at compile time.
var _ digest.URLValidator = (*Validator)(nil)

// Validator accepts absolute http(s) URLs with a host. The whole input must
// be a single URL as recognized by xurls' strict matcher; surrounding
// whitespace makes the input invalid.
type Validator struct {
	re *regexp.Regexp
}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{re: xurls.Strict()}
}

// Valid reports whether rawURL is a well-formed web URL.
func (v *Validator) Valid(rawURL string) bool {
	if rawURL == "" || strings.TrimSpace(rawURL) != rawURL {
		return false
	}
	if v.re.FindString(rawURL) != rawURL {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Hostname() != ""
}
