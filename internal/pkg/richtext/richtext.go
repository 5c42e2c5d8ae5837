// Package richtext cleans admin-authored product descriptions before they are stored.
package richtext

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var descriptionPolicy = newDescriptionPolicy()

func newDescriptionPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption")
	policy.AllowAttrs("class").OnElements("p", "span", "figure", "figcaption")
	policy.AllowAttrs("loading").OnElements("img")
	policy.RequireNoFollowOnLinks(true)
	return policy
}

// Sanitize strips scripts, event handlers and unknown markup, keeping formatting tags.
func Sanitize(html string) string {
	return strings.TrimSpace(descriptionPolicy.Sanitize(html))
}
