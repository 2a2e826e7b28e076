package util

import (
	"regexp"
	"strings"
)

var (
	whitespace = regexp.MustCompile(`\s+`)
	hashtag    = regexp.MustCompile(`#[\p{L}\p{N}_]+`)
)

// NormalizeWhitespace trims and collapses whitespace to single spaces.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// ContainsFold reports whether needle is a case-insensitive substring of text.
func ContainsFold(text, needle string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(needle))
}

// AnyContainsFold returns true if any of the texts contains needle (case-insensitive).
func AnyContainsFold(texts []string, needle string) bool {
	for _, t := range texts {
		if ContainsFold(t, needle) {
			return true
		}
	}
	return false
}

// ExtractHashtags returns the distinct #tags in s, lowercased, in order of appearance.
func ExtractHashtags(s string) []string {
	seen := make(map[string]struct{})
	var out []string
	for _, m := range hashtag.FindAllString(s, -1) {
		tag := strings.ToLower(m)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// Truncate cuts s to at most n runes, adding an ellipsis when shortened.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "…"
}
