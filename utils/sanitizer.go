package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// StrictPolicy strips all HTML from user-generated content. Names and
// subject tags are rendered in other users' browsers, so they go through
// this at signup. Message text is stored verbatim.
var StrictPolicy = bluemonday.StrictPolicy()

// stripHTML removes tags, then undoes the entity escaping the policy
// applies to what remains. We store plain text, not pre-rendered HTML,
// so "O'Brien" and "Rock & Roll" must survive unchanged.
func stripHTML(s string) string {
	return html.UnescapeString(StrictPolicy.Sanitize(s))
}

// CleanName strips HTML and surrounding whitespace from a display name.
func CleanName(name string) string {
	return strings.TrimSpace(stripHTML(name))
}

// CleanSubjects sanitizes each subject tag, dropping entries that become
// empty. Duplicates are kept as supplied.
func CleanSubjects(subjects []string) []string {
	out := make([]string, 0, len(subjects))
	for _, s := range subjects {
		s = strings.TrimSpace(stripHTML(s))
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
