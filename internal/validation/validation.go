package validation

import (
	"net/url"
	"regexp"
	"strings"
	"unicode/utf8"
)

// TopicIDPattern defines the valid topic id format: alphanumeric, hyphens, underscores.
var TopicIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// KeywordPattern defines a trigger keyword that can appear in normalized input:
// lower-case ASCII words separated by single spaces.
var KeywordPattern = regexp.MustCompile(`^[a-z0-9]+( [a-z0-9]+)*$`)

// ValidateTopicID checks if a topic id matches the allowed pattern.
func ValidateTopicID(id string) bool {
	if id == "" || len(id) > 100 {
		return false
	}
	return TopicIDPattern.MatchString(id)
}

// NormalizeKeyword lowercases and trims a keyword so matching is case-insensitive.
func NormalizeKeyword(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// ValidateKeyword reports whether a normalized keyword can ever match a
// normalized query. Punctuation is stripped from queries before scoring, so a
// keyword carrying punctuation would be dead weight.
func ValidateKeyword(keyword string) bool {
	if keyword == "" || len(keyword) > 100 {
		return false
	}
	return KeywordPattern.MatchString(keyword)
}

// ValidateQuery checks a raw user query before it is handed to the matcher.
// maxLen is counted in runes; zero disables the length check.
func ValidateQuery(query string, maxLen int) (bool, string) {
	if strings.TrimSpace(query) == "" {
		return false, "query is required"
	}
	if !utf8.ValidString(query) {
		return false, "query must be valid UTF-8"
	}
	if maxLen > 0 && utf8.RuneCountInString(query) > maxLen {
		return false, "query is too long"
	}
	return true, ""
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}
