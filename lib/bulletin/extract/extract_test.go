package extract

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleText = `Monroe County COVID-19 Update
There are 142 confirmed cases of COVID-19.
Deaths related to COVID-19   3 patients
22 people are hospitalized, 8 of them are in ICU.
430 people into mandatory quarantine
`

func TestExtract(t *testing.T) {
	fields := Extract(sampleText, DefaultPatterns)
	require.Len(t, fields, len(DefaultPatterns))

	expected := []string{"142", "3", "22", "8", "430"}
	for i, want := range expected {
		v, ok := fields[i].Matched()
		require.True(t, ok, DefaultPatterns[i].Name)
		require.Equal(t, want, v, DefaultPatterns[i].Name)
	}
}

func TestExtractUnavailable(t *testing.T) {
	text := "There are 142 confirmed cases of COVID-19."

	fields := Extract(text, DefaultPatterns)
	require.Len(t, fields, len(DefaultPatterns))

	v, ok := fields[0].Matched()
	require.True(t, ok)
	require.Equal(t, "142", v)

	// no ICU sentence: position preserved, sentinel value
	_, ok = fields[3].Matched()
	require.False(t, ok)
	require.Equal(t, Sentinel, fields[3].String())
}

func TestExtractNoMatchesAtAll(t *testing.T) {
	fields := Extract("nothing relevant here", DefaultPatterns)
	require.Len(t, fields, len(DefaultPatterns))
	for _, f := range fields {
		_, ok := f.Matched()
		require.False(t, ok)
	}
}

func TestExtractCaseInsensitive(t *testing.T) {
	fields := Extract("THERE ARE 7 CONFIRMED CASES", DefaultPatterns)
	v, ok := fields[0].Matched()
	require.True(t, ok)
	require.Equal(t, "7", v)
}

func TestExtractFirstMatchWins(t *testing.T) {
	text := "There are 10 confirmed cases. There are 99 confirmed cases."
	fields := Extract(text, DefaultPatterns)
	v, _ := fields[0].Matched()
	require.Equal(t, "10", v)
}
