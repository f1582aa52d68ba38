// Package trafilatura provides a pagechat.Extractor backed by go-trafilatura,
// which scores text density and falls back to readability heuristics.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/goquery"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements pagechat.Extractor at compile time.
var _ pagechat.Extractor = (*Extractor)(nil)

// Source is the Extraction source reported by Extractor.
const Source = "trafilatura"

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	opts trafilatura.Options
}

// NewExtractor creates a new Extractor with fallback extraction enabled.
func NewExtractor() *Extractor {
	return &Extractor{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Extract processes raw HTML and returns the cleaned main content.
// Pages trafilatura cannot parse yield an empty Extraction.
func (e *Extractor) Extract(rawHTML string) *pagechat.Extraction {
	empty := &pagechat.Extraction{Source: Source}
	if strings.TrimSpace(rawHTML) == "" {
		return empty
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.opts)
	if err != nil || result == nil || result.ContentNode == nil {
		return empty
	}

	contentHTML, err := renderNode(result.ContentNode)
	if err != nil {
		return empty
	}

	return &pagechat.Extraction{
		Content: pagechat.CleanContent(goquery.VisibleTextFromHTML(contentHTML)),
		Source:  Source,
		HTML:    contentHTML,
	}
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
