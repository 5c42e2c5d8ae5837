package textnorm

import (
	"regexp"
	"strings"
)

var (
	hexColor6 = regexp.MustCompile(`^#[0-9A-F]{6}$`)
	hexColor3 = regexp.MustCompile(`^#[0-9A-F]{3}$`)
)

// NormalizeHexColor canonicalises a colour typed by a user to the "#RRGGBB" form.
// Input that is neither a 6 nor a 3 digit hex colour is rejected by returning previous.
//
//	NormalizeHexColor("abc", "#000000")    == "#AABBCC"
//	NormalizeHexColor("zzzzzz", "#000000") == "#000000"
func NormalizeHexColor(input, previous string) string {
	if hex, ok := ParseHexColor(input); ok {
		return hex
	}
	return previous
}

// ParseHexColor is the strict form of NormalizeHexColor used when validating settings.
func ParseHexColor(input string) (string, bool) {
	hex := strings.ToUpper(strings.TrimSpace(input))
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	switch {
	case hexColor6.MatchString(hex):
		return hex, true
	case hexColor3.MatchString(hex):
		r, g, b := hex[1:2], hex[2:3], hex[3:4]
		return "#" + r + r + g + g + b + b, true
	}
	return "", false
}
