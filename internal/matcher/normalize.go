package matcher

import "strings"

// Normalize prepares raw input for matching. lowered is the lower-cased,
// trimmed input that fallback heuristics run against; clean additionally
// drops every rune that is not an ASCII letter, digit, or whitespace and is
// what topic keywords are scored against.
func Normalize(raw string) (lowered, clean string) {
	lowered = strings.TrimSpace(strings.ToLower(raw))
	clean = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == ' ', r == '\t', r == '\n', r == '\v', r == '\f', r == '\r':
			return r
		}
		return -1
	}, lowered)
	return lowered, clean
}
