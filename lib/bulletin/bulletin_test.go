package bulletin

import (
	"testing"
	"time"

	"bulletinwatch/lib/timezone"

	"github.com/stretchr/testify/require"
)

func TestTimestamp(t *testing.T) {
	ts := At(time.Date(2020, time.March, 16, 14, 0, 0, 0, timezone.Location))
	require.Equal(t, Timestamp("2020-03-16_1400"), ts)
	require.Equal(t, "2020-03-16 14:00", ts.Display())

	parsed, err := Parse("2020-03-16_1400")
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, ts, parsed)

	_, err = Parse("notes.txt")
	require.Error(t, err)
}

func TestTimestampOrdering(t *testing.T) {
	older := Timestamp("2020-03-15_0900")
	newer := Timestamp("2020-03-16_1400")

	require.True(t, newer.After(older))
	require.False(t, older.After(newer))
	require.False(t, newer.After(newer))
	// the zero Timestamp is a floor for every valid encoding
	require.True(t, older.After(Timestamp("")))
}
