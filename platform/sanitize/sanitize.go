// Package sanitize cleans user-supplied text before it is stored and shown
// on the dashboard.
package sanitize

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex    = regexp.MustCompile(`<[^>]*>`)
	whitespaceRegex = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&amp;", "&",
		"&quot;", "\"",
		"&#39;", "'",
	)
)

// StripHTML removes HTML tags, including tags hidden behind common entities.
func StripHTML(s string) string {
	result := htmlTagRegex.ReplaceAllString(s, "")
	result = entityReplacer.Replace(result)
	return htmlTagRegex.ReplaceAllString(result, "")
}

// Text strips HTML and collapses whitespace runs to single spaces.
func Text(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(StripHTML(s), " "))
}
