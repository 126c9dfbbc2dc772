// Package sanitize collapses HTML fragments to clean inline text.
// It runs a streaming tokenizer over the fragment instead of regex
// substitution, so nested and malformed tags cannot leak markup into
// the output. Sanitizing already-clean text returns it unchanged aside
// from whitespace normalization.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
)

// blockTags are converted to a single space so adjacent block contents
// don't run together.
var blockTags = map[string]struct{}{
	"p": {}, "br": {}, "div": {}, "li": {}, "ul": {}, "ol": {},
	"blockquote": {}, "table": {}, "tr": {}, "td": {}, "th": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"fieldset": {}, "legend": {}, "hr": {}, "section": {}, "article": {},
	"dt": {}, "dd": {}, "dl": {},
}

// skipTags contribute no visible text at all.
var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {},
}

// Clean strips markup from an HTML fragment, decodes entities, and
// collapses runs of whitespace to one space. Inline tags (b, strong,
// em, span, a, ...) keep their inner text; block tags become spaces.
func Clean(fragment string) string {
	if fragment == "" {
		return ""
	}
	if !strings.ContainsAny(fragment, "<&") {
		return collapse(fragment)
	}

	z := html.NewTokenizer(strings.NewReader(fragment))
	var b strings.Builder
	skipDepth := 0
	for {
		switch tt := z.Next(); tt {
		case html.ErrorToken:
			// io.EOF or malformed tail; either way we keep what we have.
			return collapse(b.String())
		case html.TextToken:
			if skipDepth == 0 {
				b.Write(z.Text())
			}
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if _, ok := skipTags[tag]; ok {
				if tt == html.StartTagToken {
					skipDepth++
				} else if tt == html.EndTagToken && skipDepth > 0 {
					skipDepth--
				}
				continue
			}
			if _, ok := blockTags[tag]; ok {
				b.WriteByte(' ')
			}
		}
	}
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
