package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in       string
		expected string
	}{
		{"Monday, March 16, 2020 2PM", "monday march 16 2020 2pm"},
		{"  Monday   March 16   2PM ", "monday march 16 2pm"},
		{"Monday March 16 2020—2PM", "monday march 16 2020 2pm"},
		{"Monday March 16 2020 2PM (Corrected)", "monday march 16 2020 2pm corrected"},
		{"COVID-19 Cases by Zip Code", "covid 19 cases by zip code"},
		{"", ""},
	}

	for _, test := range cases {
		require.Equal(t, test.expected, Normalize(test.in))
	}
}

func TestMatchAny(t *testing.T) {
	matchers := []string{"statement", "zip code"}

	require.True(t, MatchAny("statement on first case", matchers))
	require.True(t, MatchAny("cases by zip code", matchers))
	require.False(t, MatchAny("monday march 16 2020 2pm", matchers))
	require.False(t, MatchAny("anything", nil))
}
