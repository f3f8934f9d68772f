package common

import "strings"

// HasAny returns true if s contains any of the substrings.
func HasAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

// SanitizeToken makes s safe to embed in a filename: surrounding whitespace
// is dropped and inner whitespace runs collapse to a single underscore.
func SanitizeToken(s string) string {
	return strings.Join(strings.Fields(s), "_")
}
