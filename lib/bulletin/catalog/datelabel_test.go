package catalog

import (
	"errors"
	"testing"
	"time"

	"bulletinwatch/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestParseLabel(t *testing.T) {
	cases := []struct {
		label    string
		expected time.Time
	}{
		{
			label:    "monday march 16 2020 2pm",
			expected: time.Date(2020, time.March, 16, 14, 0, 0, 0, timezone.Location),
		},
		{
			label:    "wednesday april 1 2020 11am",
			expected: time.Date(2020, time.April, 1, 11, 0, 0, 0, timezone.Location),
		},
		{
			// no explicit year, inferred as 2020
			label:    "saturday march 14 5pm",
			expected: time.Date(2020, time.March, 14, 17, 0, 0, 0, timezone.Location),
		},
		{
			label:    "tuesday december 1 2020 12pm",
			expected: time.Date(2020, time.December, 1, 12, 0, 0, 0, timezone.Location),
		},
	}

	for _, test := range cases {
		got, err := ParseLabel(test.label)
		if err != nil {
			t.Fatal(test.label, err)
		}
		require.Equal(t, test.expected, got, test.label)
	}
}

func TestParseLabelMalformed(t *testing.T) {
	for _, label := range []string{
		"",
		"covid 19 update",
		"monday march 2pm",
		"monday march 16 2021 2pm",
	} {
		_, err := ParseLabel(label)
		require.Error(t, err, label)

		var malformed *MalformedLabelError
		require.True(t, errors.As(err, &malformed), label)
		require.Equal(t, label, malformed.Label)
	}
}
