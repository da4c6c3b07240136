package markup

import (
	"regexp"
	"strings"
)

// whitespacePattern collapses runs of whitespace.
var whitespacePattern = regexp.MustCompile(`\s+`)

// Normalise collapses every whitespace run to a single space and trims
// the ends. Two documents that differ only in insignificant whitespace
// normalise to the same string; the parse/serialise round trip is
// stable under this comparison.
func Normalise(s string) string {
	return strings.TrimSpace(whitespacePattern.ReplaceAllString(s, " "))
}
