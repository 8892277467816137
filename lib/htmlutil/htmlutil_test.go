package htmlutil

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

const listingPage = `
<html><body>
<ul>
<li><a href="/files/health/coronavirus/update-1.pdf">Monday March 16 <b>2PM</b></a></li>
<li><a href="/files/health/coronavirus/update-2.pdf">Tuesday March 17 2PM</a></li>
<li><a href="/files/health/flu/weekly.pdf">Weekly flu report</a></li>
<li><a href="https://example.com/other">Elsewhere</a></li>
</ul>
</body></html>`

func TestAnchors(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(listingPage))
	if err != nil {
		t.Fatal(err)
	}

	anchors := Anchors(context.Background(), doc, "/files/health/coronavirus/")
	require.Len(t, anchors, 2)
	require.Equal(t, "Monday March 16 2PM", anchors[0].Label)
	require.Equal(t, "/files/health/coronavirus/update-1.pdf", anchors[0].Href)
	require.Equal(t, "Tuesday March 17 2PM", anchors[1].Label)

	all := Anchors(context.Background(), doc, "")
	require.Len(t, all, 4)
}
