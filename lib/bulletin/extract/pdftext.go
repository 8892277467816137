package extract

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PageSeparator is inserted between the extracted text of consecutive
// pages. patterns are matched over the concatenated text, so a match
// can in principle span a page break; the separator at least keeps the
// break visible in the text.
var PageSeparator = strings.Repeat("-", 79)

var wideGap = regexp.MustCompile(`  +`)

// Text extracts a bulletin's plain text, page by page. within each
// page newlines are dropped and runs of two or more spaces become line
// breaks, which is how the bulletins' column layout reads best.
func Text(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var out strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		txt, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("extract page %d of %s: %w", i, path, err)
		}
		txt = strings.ReplaceAll(txt, "\n", "")
		txt = wideGap.ReplaceAllString(txt, "\n")

		out.WriteString(txt)
		out.WriteString("\n")
		out.WriteString(PageSeparator)
		out.WriteString("\n")
	}
	return out.String(), nil
}
