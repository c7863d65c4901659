package mailer

import (
	"html"
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)
)

// StripHTML derives a plain-text body from an HTML document: tags are deleted,
// entities decoded, runs of whitespace collapsed to single spaces.
func StripHTML(doc string) string {
	text := tagPattern.ReplaceAllString(doc, " ")
	text = html.UnescapeString(text)
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(text, " "))
}
