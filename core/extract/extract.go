// Package extract pulls a partially-populated Recipe out of one
// decoded HTML document. Documents carrying the recipe site's own
// markup take the site-specific path; anything else falls back to a
// generic path that needs an <article> container to work within.
//
// Field extraction is tiered: each tier returns an empty value when its
// pattern doesn't match and the next tier runs, so an absent field
// degrades to a default instead of an error.
package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/category"
)

// HTMLExtractor implements core.Extractor for both document shapes.
type HTMLExtractor struct {
	categories *category.Index
}

// New creates an HTMLExtractor using the given category index.
func New(idx *category.Index) *HTMLExtractor {
	return &HTMLExtractor{categories: idx}
}

// Extract dispatches on the site's structural markers. A nil result
// means the document should be skipped.
func (e *HTMLExtractor) Extract(htmlText string) *core.Recipe {
	if strings.Contains(htmlText, "recipe_De_title") || strings.Contains(htmlText, "meishichina.com") {
		return e.extractSite(htmlText)
	}
	return e.extractGeneric(htmlText)
}

func parseDocument(htmlText string) (*goquery.Document, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, false
	}
	return doc, true
}

// metaDescription returns the decoded meta-description content, or "".
func metaDescription(doc *goquery.Document) string {
	content, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	return strings.TrimSpace(content)
}

// trimSuffixes cuts the text at the first occurrence of any marker.
func trimSuffixes(s string, markers ...string) string {
	for _, m := range markers {
		if i := strings.Index(s, m); i >= 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}
