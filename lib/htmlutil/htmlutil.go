package htmlutil

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("bulletinwatch.lib.htmlutil")

func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

type Anchor struct {
	Label string
	Href  string
}

// Anchors collects every <a> in the document whose href contains
// hrefFilter. Labels are the raw inner text of the anchor, hrefs are
// returned as written in the document (possibly relative).
func Anchors(ctx context.Context, doc *goquery.Document, hrefFilter string) []Anchor {
	ctx, span := tracer.Start(ctx, "Anchors")
	defer span.End()

	var anchors []Anchor
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href := sel.AttrOr("href", "")
		if hrefFilter != "" && !strings.Contains(href, hrefFilter) {
			return
		}
		for _, n := range sel.Nodes {
			anchors = append(anchors, Anchor{
				Label: GetText(n),
				Href:  href,
			})
			span.AddEvent("anchor", trace.WithAttributes(
				attribute.String("href", href),
			))
		}
	})

	return anchors
}
