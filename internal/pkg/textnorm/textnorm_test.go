package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSlug(t *testing.T) {
	cases := map[string]string{
		"Электроника":          "elektronika",
		"  Hello, World!  ":    "hello-world",
		"Щётка для обуви":      "schyotka-dlya-obuvi",
		"Объявление":           "obyavlenie",
		"---":                  "",
		"Multicam 2024 / XL":   "multicam-2024-xl",
		"ёлка":                "yolka",
		"Already-good-slug-01": "already-good-slug-01",
	}
	for in, want := range cases {
		assert.Equal(t, want, GenerateSlug(in), "input %q", in)
	}
}

func TestValidSlug(t *testing.T) {
	assert.True(t, ValidSlug("hello-world"))
	assert.True(t, ValidSlug("tag_1"))
	assert.False(t, ValidSlug(""))
	assert.False(t, ValidSlug("Hello"))
	assert.False(t, ValidSlug("-leading"))
	assert.False(t, ValidSlug("double--hyphen"))
	assert.False(t, ValidSlug("with space"))
}

func TestNormalizeHashtags(t *testing.T) {
	assert.Equal(t, "#tag1 #tag2 #weirdchars", NormalizeHashtags("  tag1 #tag2  weird#chars! "))
	assert.Equal(t, "#тактика #snake_case", NormalizeHashtags("##тактика snake_case"))
	assert.Equal(t, "", NormalizeHashtags("  # !!! ## "))
	assert.Equal(t, "", NormalizeHashtags(""))
}

func TestSplitHashtags(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, SplitHashtags("#a  b"))
	assert.Nil(t, SplitHashtags("   "))
}

func TestNormalizeHexColor(t *testing.T) {
	assert.Equal(t, "#AABBCC", NormalizeHexColor("abc", "#000000"))
	assert.Equal(t, "#1A2B3C", NormalizeHexColor(" #1a2b3c ", "#000000"))
	assert.Equal(t, "#000000", NormalizeHexColor("zzzzzz", "#000000"))
	assert.Equal(t, "#FFFFFF", NormalizeHexColor("#ffff", "#FFFFFF"))
}

func TestNormalizeTelegramLink(t *testing.T) {
	assert.Equal(t, "https://t.me/shop", NormalizeTelegramLink("@shop"))
	assert.Equal(t, "https://t.me/shop", NormalizeTelegramLink("t.me/shop"))
	assert.Equal(t, "https://t.me/shop", NormalizeTelegramLink("shop"))
	assert.Equal(t, "tg://resolve?domain=shop", NormalizeTelegramLink("tg://resolve?domain=shop"))
	assert.Equal(t, "http://example.com", NormalizeTelegramLink(" http://example.com "))
	assert.Equal(t, "", NormalizeTelegramLink("  "))
}
