// Package htmlsanitize strips markup from free-text fields before they are
// stored. Institution names, slogans, addresses and classroom names are
// rendered by several front ends, so they are kept as plain text.
package htmlsanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// maxPasses bounds the sanitize/unescape loop. Each pass peels one level of
// entity escaping.
const maxPasses = 8

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// PlainText removes every tag and trims surrounding whitespace. Entities
// are unescaped so "A & B" round-trips unchanged; the result is sanitized
// again until it stops changing, so escaped markup such as "&lt;script&gt;"
// cannot turn back into a tag. Input still changing after maxPasses loses
// its angle brackets.
func PlainText(s string) string {
	if s == "" {
		return ""
	}
	cur := s
	for range maxPasses {
		next := strings.TrimSpace(html.UnescapeString(strict.Sanitize(cur)))
		if next == cur {
			return next
		}
		cur = next
	}
	return strings.TrimSpace(angleBrackets.Replace(cur))
}
