package wikibot

import (
	"net/url"
	"strings"
)

// Sanitize percent-encodes text for use as a URL query parameter value.
// Only unreserved characters survive; spaces become %20. Encoding is applied
// once, so already-encoded input is encoded again.
func Sanitize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ReplaceAll(url.QueryEscape(text), "+", "%20")
}
