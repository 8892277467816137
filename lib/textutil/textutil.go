package textutil

import (
	"regexp"
	"strings"
)

var (
	nonAscii    = regexp.MustCompile(`[^\x00-\x7f]`)
	punctuation = regexp.MustCompile(`[!-/:-@\[-` + "`" + `{-~]`)
	whitespace  = regexp.MustCompile(`\s+`)
)

// Normalize lowercases a link label and reduces it to a canonical
// comparison form: non-ascii runes and punctuation become spaces,
// runs of whitespace collapse to a single space.
func Normalize(label string) string {
	label = strings.ToLower(label)
	label = nonAscii.ReplaceAllString(label, " ")
	label = punctuation.ReplaceAllString(label, " ")
	label = whitespace.ReplaceAllString(label, " ")
	return strings.TrimSpace(label)
}

// MatchAny reports whether any of the given substrings occurs in s.
func MatchAny(s string, matchers []string) bool {
	for _, m := range matchers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
