// Package extract pulls the fixed set of numeric indicators out of a
// bulletin's text.
package extract

import "regexp"

// Sentinel is what a non-matching field serializes to.
const Sentinel = "not available"

// FieldValue is either a captured numeric string or unavailable. the
// two cases are kept distinct so store backends can pick their own
// serialization for absence.
type FieldValue struct {
	value   string
	matched bool
}

func Matched(value string) FieldValue {
	return FieldValue{value: value, matched: true}
}

func Unavailable() FieldValue {
	return FieldValue{}
}

func (v FieldValue) Matched() (string, bool) {
	return v.value, v.matched
}

func (v FieldValue) String() string {
	if v.matched {
		return v.value
	}
	return Sentinel
}

// Pattern is one ordered extraction descriptor. Regexp must contain
// exactly one capture group, holding the numeric value.
type Pattern struct {
	Name   string
	Regexp *regexp.Regexp
}

// DefaultPatterns are the five indicators the county's bulletins
// report, in store column order.
var DefaultPatterns = []Pattern{
	{"cases", regexp.MustCompile(`(?i)There are (\d+) confirmed cases`)},
	{"deaths", regexp.MustCompile(`(?i)Deaths related to COVID-19 +(\d+) patients?`)},
	{"hospitalized", regexp.MustCompile(`(?i)(\d+) people are hospitalized`)},
	{"icu", regexp.MustCompile(`(?i)(\d+) (?:of|are).* in ICU`)},
	{"quarantined", regexp.MustCompile(`(?i)(\d+) people in(?:to)? mandatory quarantine`)},
}

// Extract applies every pattern to text independently, first match
// wins. the result always has one value per pattern, in pattern
// order; a non-match yields Unavailable at that position.
func Extract(text string, patterns []Pattern) []FieldValue {
	out := make([]FieldValue, len(patterns))
	for i, p := range patterns {
		m := p.Regexp.FindStringSubmatch(text)
		if m == nil {
			out[i] = Unavailable()
			continue
		}
		out[i] = Matched(m[1])
	}
	return out
}
