package catalog

import (
	"errors"
	"testing"

	"bulletinwatch/lib/bulletin"
	"bulletinwatch/lib/htmlutil"

	"github.com/stretchr/testify/require"
)

const testDomain = "https://www2.example.gov"

func TestBuildCorrection(t *testing.T) {
	anchors := []htmlutil.Anchor{
		{Label: "Monday March 16 2020 2PM", Href: "/files/health/coronavirus/health-update-1.pdf"},
		{Label: "Monday March 16 2020 2PM Corrected", Href: "/files/health/coronavirus/health-update-1-v2.pdf"},
	}

	cat, err := Build(anchors, Options{Domain: testDomain})
	if err != nil {
		t.Fatal(err)
	}

	require.Equal(t, Catalog{
		"2020-03-16_1400": testDomain + "/files/health/coronavirus/health-update-1-v2.pdf",
	}, cat)
}

func TestBuildExclusionsAndAbsoluteHrefs(t *testing.T) {
	anchors := []htmlutil.Anchor{
		{Label: "Statement on First Case", Href: "/files/health/coronavirus/statement.pdf"},
		{Label: "Cases by Zip Code", Href: "/files/health/coronavirus/zips.pdf"},
		{Label: "Tuesday March 17 2020 2PM", Href: "https://cdn.example.gov/update-2.pdf"},
	}

	cat, err := Build(anchors, Options{Domain: testDomain})
	if err != nil {
		t.Fatal(err)
	}

	// excluded links dropped, absolute hrefs untouched
	require.Equal(t, Catalog{
		"2020-03-17_1400": "https://cdn.example.gov/update-2.pdf",
	}, cat)
}

func TestBuildUncorrectedMissing(t *testing.T) {
	anchors := []htmlutil.Anchor{
		{Label: "Monday March 16 2020 2PM Corrected", Href: "/a.pdf"},
	}

	_, err := Build(anchors, Options{Domain: testDomain})
	require.ErrorIs(t, err, ErrUncorrectedLinkMissing)
}

func TestBuildMalformedLabel(t *testing.T) {
	anchors := []htmlutil.Anchor{
		{Label: "COVID-19 General Update", Href: "/a.pdf"},
	}

	_, err := Build(anchors, Options{Domain: testDomain})

	var malformed *MalformedLabelError
	require.True(t, errors.As(err, &malformed))
	require.Equal(t, "covid 19 general update", malformed.Label)
}

func TestBuildDuplicatePolicies(t *testing.T) {
	anchors := []htmlutil.Anchor{
		{Label: "Monday March 16 2020 2PM", Href: "/old.pdf"},
		{Label: "Monday March 16 2020 2PM", Href: "/new.pdf"},
	}

	cat, err := Build(anchors, Options{Domain: testDomain})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, testDomain+"/new.pdf", cat["2020-03-16_1400"])

	cat, err = Build(anchors, Options{Domain: testDomain, Duplicates: DuplicatesFirstWins})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, testDomain+"/old.pdf", cat["2020-03-16_1400"])

	_, err = Build(anchors, Options{Domain: testDomain, Duplicates: DuplicatesReject})
	require.ErrorIs(t, err, ErrDuplicateLabel)
}

func TestBuildTimestampCollision(t *testing.T) {
	// distinct labels naming the same instant, with neither marked as
	// a correction
	anchors := []htmlutil.Anchor{
		{Label: "Monday March 16 2020 2PM", Href: "/a.pdf"},
		{Label: "Monday March 16 2PM", Href: "/b.pdf"},
	}

	_, err := Build(anchors, Options{Domain: testDomain})
	require.ErrorIs(t, err, ErrTimestampCollision)
}

func TestResolveCorrectionsIdempotent(t *testing.T) {
	byLabel := map[string]string{
		"monday march 16 2020 2pm":           "/old.pdf",
		"monday march 16 2020 2pm corrected": "/new.pdf",
		"tuesday march 17 2020 2pm":          "/other.pdf",
	}

	err := resolveCorrections(byLabel)
	if err != nil {
		t.Fatal(err)
	}
	resolved := map[string]string{
		"monday march 16 2020 2pm":  "/new.pdf",
		"tuesday march 17 2020 2pm": "/other.pdf",
	}
	require.Equal(t, resolved, byLabel)

	// a second pass over an already-resolved map is a no-op
	err = resolveCorrections(byLabel)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, resolved, byLabel)
}

func TestTimestampsSorted(t *testing.T) {
	cat := Catalog{
		"2020-03-17_1400": "/b.pdf",
		"2020-03-14_1700": "/a.pdf",
		"2020-03-20_1100": "/c.pdf",
	}
	require.Equal(t, []bulletin.Timestamp{
		"2020-03-14_1700",
		"2020-03-17_1400",
		"2020-03-20_1100",
	}, cat.Timestamps())
}
