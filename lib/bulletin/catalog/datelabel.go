package catalog

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"bulletinwatch/lib/timezone"
)

// the archive's two observed label shapes, after normalization:
// "monday march 16 2020 2pm" and (early entries) "monday march 16 2pm".
const (
	labelLayoutWithYear = "Monday January 2 2006 3PM"
	labelLayoutNoYear   = "Monday January 2 3PM"
)

// labels without an explicit year all predate the site adding one.
const impliedYear = 2020

// MalformedLabelError reports a listing label that matches neither
// accepted date format.
type MalformedLabelError struct {
	Label string
	cause error
}

func (e *MalformedLabelError) Error() string {
	return fmt.Sprintf("malformed bulletin label %q: %s", e.Label, e.cause)
}

func (e *MalformedLabelError) Unwrap() error {
	return e.cause
}

var meridiem = regexp.MustCompile(`^\d{1,2}(am|pm)$`)

// normalized labels are lowercase, but time.Parse wants month and
// weekday names capitalized and the meridiem uppercased.
func recapitalize(label string) string {
	words := strings.Fields(label)
	for i, w := range words {
		if meridiem.MatchString(w) {
			words[i] = strings.ToUpper(w)
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// ParseLabel parses a normalized listing label into the bulletin's
// publication time. labels carrying a literal "2020" token use the
// explicit-year format; the rest use the year-less format with the
// year forced to the implied one.
func ParseLabel(label string) (time.Time, error) {
	s := recapitalize(label)

	if strings.Contains(label, "2020") {
		t, err := time.ParseInLocation(labelLayoutWithYear, s, timezone.Location)
		if err != nil {
			return time.Time{}, &MalformedLabelError{Label: label, cause: err}
		}
		return t, nil
	}

	t, err := time.ParseInLocation(labelLayoutNoYear, s, timezone.Location)
	if err != nil {
		return time.Time{}, &MalformedLabelError{Label: label, cause: err}
	}
	return time.Date(
		impliedYear, t.Month(), t.Day(),
		t.Hour(), t.Minute(), 0, 0, timezone.Location,
	), nil
}
