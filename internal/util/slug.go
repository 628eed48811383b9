// Package util provides common utility functions.
package util

import (
	"regexp"
	"strings"
)

// Lowercase alphanumeric words joined by single dashes.
var slugRe = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// IsSlug reports whether s is a canonical slug.
//
// Examples:
//
//	"science-fiction" → true
//	"imdb-top-250"    → true
//	"Action"          → false
//	"rom--com"        → false
//	"-halloween"      → false
func IsSlug(s string) bool {
	return slugRe.MatchString(s)
}

// SlugWords turns a slug back into space separated words: "apple-tv" → "apple tv".
func SlugWords(slug string) string {
	return strings.ReplaceAll(slug, "-", " ")
}
