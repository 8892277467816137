// Package bulletin defines the canonical identity of a single health
// bulletin: the date and hour it was published.
package bulletin

import (
	"time"

	"bulletinwatch/lib/timezone"
)

// FileTimeFormat encodes a timestamp for use as a cache filename.
// zero-padded and fixed-width, so lexicographic order on the encoded
// form is chronological order.
const FileTimeFormat = "2006-01-02_1504"

// DisplayTimeFormat is the encoding written to (and read back from)
// the persistent store's timestamp column.
const DisplayTimeFormat = "2006-01-02 15:04"

// Timestamp is the canonical encoding of a bulletin's publication
// time, in FileTimeFormat.
type Timestamp string

func At(t time.Time) Timestamp {
	return Timestamp(t.Format(FileTimeFormat))
}

// Parse converts a canonical encoding back into a Timestamp,
// rejecting strings that are not valid encodings.
func Parse(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(FileTimeFormat, s, timezone.Location)
	if err != nil {
		return "", err
	}
	return At(t), nil
}

func (ts Timestamp) Time() (time.Time, error) {
	return time.ParseInLocation(FileTimeFormat, string(ts), timezone.Location)
}

func (ts Timestamp) Display() string {
	t, err := ts.Time()
	if err != nil {
		return string(ts)
	}
	return t.Format(DisplayTimeFormat)
}

// After reports whether ts is strictly later than other. comparison is
// on the encoded form, which orders chronologically.
func (ts Timestamp) After(other Timestamp) bool {
	return string(ts) > string(other)
}
