// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dedup

import (
	"regexp"
	"strings"
	"unicode"
)

// normalizeText lowercases, strips punctuation, and collapses whitespace so
// cosmetic differences don't defeat comparison.
func normalizeText(text string) string {
	if text == "" {
		return ""
	}
	var b strings.Builder
	for _, r := range strings.ToLower(text) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

// trackingParams matches query parameters that identify a click path rather
// than the content: utm_* campaign tags, ref*, source*, medium*.
var trackingParams = regexp.MustCompile(`[?&](utm_[^&]*|ref[^&]*|source[^&]*|medium[^&]*)`)

// normalizeURL canonicalizes a URL for comparison: tracking parameters,
// the trailing slash, and the www. prefix are stripped and the result is
// lowercased.
func normalizeURL(url string) string {
	if url == "" {
		return ""
	}
	url = trackingParams.ReplaceAllString(url, "")
	url = strings.TrimRight(url, "/")
	url = strings.ToLower(url)
	url = strings.Replace(url, "://www.", "://", 1)
	return url
}
