// Package slug converts product and category names to URL-friendly slugs
// and back. The reverse direction is lossy: characters stripped during
// encoding cannot be recovered, only dash-to-space substitution is undone.
package slug

import (
	"net/url"
	"regexp"
	"strings"
)

var (
	whitespaceRuns = regexp.MustCompile(`\s+`)
	nonWordOrDash  = regexp.MustCompile(`[^\w-]`)
	dashRuns       = regexp.MustCompile(`-+`)
)

// NameToSlug converts a product name to a URL-friendly slug.
// Example: "Lavender Scented Candle" -> "Lavender-Scented-Candle"
func NameToSlug(name string) string {
	s := strings.TrimSpace(name)
	s = whitespaceRuns.ReplaceAllString(s, "-")
	s = nonWordOrDash.ReplaceAllString(s, "")
	s = dashRuns.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return s
}

// SlugToName converts a URL slug back to a product name.
// Example: "Lavender-Scented-Candle" -> "Lavender Scented Candle"
func SlugToName(s string) string {
	decoded, err := url.PathUnescape(s)
	if err != nil {
		decoded = s
	}
	return strings.TrimSpace(strings.ReplaceAll(decoded, "-", " "))
}

// CategoryToSlug converts a category name to a URL-friendly slug.
// Categories are case-insensitive identifiers, so the slug is lower-cased.
// Example: "gift box" -> "gift-box"
func CategoryToSlug(category string) string {
	return NameToSlug(strings.ToLower(category))
}

// SlugToCategory converts a category slug back to a category name.
// Example: "gift-box" -> "gift box"
func SlugToCategory(s string) string {
	return strings.ToLower(SlugToName(s))
}
