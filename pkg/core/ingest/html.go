package ingest

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// dataMarkerRe is the one hard format contract for interop with exported
// HTML reports. Changing it breaks round-tripping of self-exported files.
var dataMarkerRe = regexp.MustCompile(`(?s)const DATA = ({.*?});`)

// ExtractEmbeddedJSON locates the `const DATA = {...};` assignment inside the
// script blocks of an exported HTML report and returns the embedded JSON.
func ExtractEmbeddedJSON(htmlDoc string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlDoc))
	if err != nil {
		return "", &FormatError{Reason: "not parseable as HTML", Err: err}
	}

	var embedded string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := dataMarkerRe.FindStringSubmatch(s.Text()); m != nil {
			embedded = m[1]
			return false
		}
		return true
	})

	if embedded == "" {
		// Some exports hand-assemble the document without proper script
		// nesting; fall back to scanning the raw text for the marker.
		if m := dataMarkerRe.FindStringSubmatch(htmlDoc); m != nil {
			embedded = m[1]
		}
	}
	if embedded == "" {
		return "", &FormatError{Reason: "const DATA marker not found in HTML document"}
	}

	return embedded, nil
}
