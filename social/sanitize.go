package social

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field length caps applied after markup stripping.
const (
	CommentMinLength = 10
	CommentMaxLength = 5000
	NameMaxLength    = 100
	ModelMaxLength   = 100
	OperatorMaxLen   = 200
	ContextMaxLength = 500
)

var (
	tagPattern  = regexp.MustCompile(`<[^>]+>`)
	slugPattern = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// StripTags removes markup-like angle-bracket spans from s.
func StripTags(s string) string {
	return tagPattern.ReplaceAllString(s, "")
}

// SanitizeText strips markup, trims surrounding whitespace and truncates
// to max runes, never splitting a multibyte character.
func SanitizeText(s string, max int) string {
	s = strings.TrimSpace(StripTags(s))
	if utf8.RuneCountInString(s) > max {
		s = string([]rune(s)[:max])
	}
	return s
}

// NormalizeSlug restricts an article slug to its safe character set,
// dropping everything else.
func NormalizeSlug(slug string) string {
	return slugPattern.ReplaceAllString(slug, "")
}

// SanitizeName sanitizes a display name, falling back to the anonymous
// sentinel when nothing survives.
func SanitizeName(name, fallback string) string {
	name = SanitizeText(name, NameMaxLength)
	if name == "" {
		return fallback
	}
	return name
}
