// Package goquery implements page content extraction and text rendering
// using CSS selectors over a parsed HTML document.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pagechat"
)

// Ensure Extractor implements pagechat.Extractor at compile time.
var _ pagechat.Extractor = (*Extractor)(nil)

// BodySource is the Extraction source reported when no priority region
// held enough content and the whole body was used.
const BodySource = "body"

// Extractor extracts a page's main content by trying a fixed list of
// main-content selectors and falling back to the whole body. Navigation,
// ads, scripts, consent banners, and the chat widget itself are removed
// from whatever region is used.
//
// Extraction works on copies of the matched subtrees; the input document is
// never modified.
type Extractor struct {
	priority []string
	exclude  []string

	// excluded matches any excluded region as a single selector group.
	excluded string
}

// NewExtractor creates a new Extractor using PrioritySelectors and
// ExclusionSelectors.
func NewExtractor() *Extractor {
	exclude := ExclusionSelectors()
	return &Extractor{
		priority: PrioritySelectors(),
		exclude:  exclude,
		excluded: strings.Join(exclude, ", "),
	}
}

// Extract parses rawHTML and returns its cleaned main content.
// Unparseable input yields an empty Extraction.
func (e *Extractor) Extract(rawHTML string) *pagechat.Extraction {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return &pagechat.Extraction{}
	}
	return e.ExtractDocument(doc)
}

// ExtractDocument returns the cleaned main content of doc.
//
// Priority selectors are tried in order. The first whose matches, with
// exclusions removed, render to more than MinCandidateLength trimmed
// characters wins. Matches that are themselves excluded, or that sit inside
// an excluded region, are skipped. Otherwise the body is used.
// ExtractDocument never panics; an unexpected failure yields an empty
// Extraction.
func (e *Extractor) ExtractDocument(doc *goquery.Document) (ext *pagechat.Extraction) {
	defer func() {
		if r := recover(); r != nil {
			ext = &pagechat.Extraction{}
		}
	}()

	for _, selector := range e.priority {
		matches := doc.Find(selector)
		if matches.Length() == 0 {
			continue
		}

		var text, markup strings.Builder
		matches.Each(func(_ int, sel *goquery.Selection) {
			if e.isExcluded(sel) {
				return
			}
			clone := e.filter(sel)
			text.WriteString(VisibleText(clone))
			text.WriteString("\n\n")
			markup.WriteString(outerHTML(clone))
		})

		if utf8.RuneCountInString(strings.TrimSpace(text.String())) > pagechat.MinCandidateLength {
			return &pagechat.Extraction{
				Content: pagechat.CleanContent(text.String()),
				Source:  selector,
				HTML:    markup.String(),
			}
		}
	}

	body := doc.Find("body").First()
	if body.Length() == 0 {
		return &pagechat.Extraction{Source: BodySource}
	}
	clone := e.filter(body)
	return &pagechat.Extraction{
		Content: pagechat.CleanContent(VisibleText(clone)),
		Source:  BodySource,
		HTML:    outerHTML(clone),
	}
}

// isExcluded reports whether sel is an excluded region or lies inside one.
func (e *Extractor) isExcluded(sel *goquery.Selection) bool {
	return sel.Is(e.excluded) || sel.ParentsFiltered(e.excluded).Length() > 0
}

// filter returns a detached copy of sel with every excluded region removed.
func (e *Extractor) filter(sel *goquery.Selection) *goquery.Selection {
	clone := sel.Clone()
	for _, selector := range e.exclude {
		clone.Find(selector).Remove()
	}
	return clone
}

// outerHTML renders sel, returning an empty string on failure.
func outerHTML(sel *goquery.Selection) string {
	s, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	return s
}
