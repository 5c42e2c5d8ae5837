package textnorm

import (
	"strings"
	"unicode"
)

// NormalizeHashtags cleans a whitespace separated hashtag list.
// Each token loses its leading '#', keeps only ASCII letters, digits, '_' and
// Cyrillic letters, and is re-prefixed with a single '#'. Tokens left empty are dropped.
//
//	NormalizeHashtags("  tag1 #tag2  weird#chars! ") == "#tag1 #tag2 #weirdchars"
func NormalizeHashtags(text string) string {
	fields := strings.Fields(text)
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		tag := cleanTag(strings.TrimLeft(f, "#"))
		if tag == "" {
			continue
		}
		out = append(out, "#"+tag)
	}
	return strings.Join(out, " ")
}

// SplitHashtags returns the normalized tags without their '#' prefix.
func SplitHashtags(text string) []string {
	normalized := NormalizeHashtags(text)
	if normalized == "" {
		return nil
	}
	tags := strings.Split(normalized, " ")
	for i, t := range tags {
		tags[i] = strings.TrimPrefix(t, "#")
	}
	return tags
}

func cleanTag(s string) string {
	var b strings.Builder
	for _, r := range s {
		if isTagRune(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isTagRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	case unicode.Is(unicode.Cyrillic, r) && unicode.IsLetter(r):
		return true
	}
	return false
}
