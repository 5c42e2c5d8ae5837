// Package textnorm holds the pure text transforms shared by the API and its clients:
// slug generation, hashtag cleanup, hex colour and Telegram link normalisation.
package textnorm

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// cyrillicToLatin is the transliteration table used for slugs.
// Hard and soft signs are dropped.
var cyrillicToLatin = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d", 'е': "e", 'ё': "yo",
	'ж': "zh", 'з': "z", 'и': "i", 'й': "y", 'к': "k", 'л': "l", 'м': "m",
	'н': "n", 'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t", 'у': "u",
	'ф': "f", 'х': "h", 'ц': "ts", 'ч': "ch", 'ш': "sh", 'щ': "sch",
	'ъ': "", 'ы': "y", 'ь': "", 'э': "e", 'ю': "yu", 'я': "ya",
}

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// slugPattern is what the API accepts as a stored slug.
var slugPattern = regexp.MustCompile(`^[a-z0-9_]+(?:-[a-z0-9_]+)*$`)

// GenerateSlug turns free text into a URL slug.
//
//	GenerateSlug("Электроника")        == "elektronika"
//	GenerateSlug("  Hello, World!  ")  == "hello-world"
func GenerateSlug(text string) string {
	// NFC first so a decomposed "е + ◌̈" still maps to "yo".
	lowered := strings.ToLower(norm.NFC.String(text))

	var b strings.Builder
	b.Grow(len(lowered))
	for _, r := range lowered {
		if latin, ok := cyrillicToLatin[r]; ok {
			b.WriteString(latin)
			continue
		}
		b.WriteRune(r)
	}

	slug := nonSlugRun.ReplaceAllString(b.String(), "-")
	return strings.Trim(slug, "-")
}

// ValidSlug reports whether s can be stored as a product or category slug.
func ValidSlug(s string) bool {
	return slugPattern.MatchString(s)
}
