// Package readability provides a pagechat.Extractor backed by go-readability,
// an alternative to the selector-based extractor for article-like pages.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/goquery"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements pagechat.Extractor at compile time.
var _ pagechat.Extractor = (*Extractor)(nil)

// Source is the Extraction source reported by Extractor.
const Source = "readability"

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL sets the URL the HTML was fetched from, used to resolve
// relative links in the extracted markup. Invalid URLs are ignored.
func WithPageURL(pageURL string) Option {
	return func(e *Extractor) {
		if u, err := url.Parse(pageURL); err == nil && u.Host != "" {
			e.pageURL = u
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the cleaned main content.
// Pages readability cannot parse yield an empty Extraction.
func (e *Extractor) Extract(rawHTML string) *pagechat.Extraction {
	if strings.TrimSpace(rawHTML) == "" {
		return &pagechat.Extraction{Source: Source}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return &pagechat.Extraction{Source: Source}
	}

	return &pagechat.Extraction{
		Content: pagechat.CleanContent(goquery.VisibleTextFromHTML(article.Content)),
		Source:  Source,
		HTML:    article.Content,
	}
}
