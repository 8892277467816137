package frontier

import (
	"testing"

	"bulletinwatch/lib/bulletin"

	"github.com/stretchr/testify/require"
)

func TestSelect(t *testing.T) {
	cached := []bulletin.Timestamp{
		"2020-03-16_1400",
		"2020-03-14_1700",
		"2020-03-15_0900",
	}

	// strictly after the last recorded entry
	got := Select(cached, "2020-03-15_0900")
	require.Equal(t, []bulletin.Timestamp{"2020-03-16_1400"}, got)

	// at the frontier exactly: excluded
	got = Select(cached, "2020-03-16_1400")
	require.Empty(t, got)

	// empty store: everything, ascending
	got = Select(cached, "")
	require.Equal(t, []bulletin.Timestamp{
		"2020-03-14_1700",
		"2020-03-15_0900",
		"2020-03-16_1400",
	}, got)

	require.Empty(t, Select(nil, ""))
}
