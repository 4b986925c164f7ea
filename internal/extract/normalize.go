package extract

import (
	"regexp"
	"strings"
)

var (
	excessNewlines = regexp.MustCompile(`[\r\n]{3,}`)
	repeatedSpace  = regexp.MustCompile(`[^\S\r\n]+`)
	hyphenLike     = regexp.MustCompile(`[-‐‑‒–—―]+`)
	zeroWidth      = regexp.MustCompile("[\u200B-\u200D\uFEFF]")
)

// Normalize cleans extracted text: collapses 3+ newlines to two, repeated
// non-newline whitespace to a single space, normalizes hyphen-like characters
// to a plain hyphen, strips zero-width characters, and trims.
func Normalize(text string) string {
	text = excessNewlines.ReplaceAllString(text, "\n\n")
	text = repeatedSpace.ReplaceAllString(text, " ")
	text = hyphenLike.ReplaceAllString(text, "-")
	text = zeroWidth.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
