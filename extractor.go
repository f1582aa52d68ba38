package pagechat

// MaxContentLength is the maximum number of characters of page content
// produced by an Extractor.
const MaxContentLength = 50000

// MinCandidateLength is the number of trimmed characters a priority region
// must exceed before it is accepted as the page's main content.
const MinCandidateLength = 100

// Extraction holds the readable content extracted from a page.
type Extraction struct {
	// Content is the cleaned plain text, at most MaxContentLength characters.
	Content string

	// Source names where the content came from: the winning priority
	// selector, "body" for the fallback, or the strategy name.
	Source string

	// HTML is the markup the content was rendered from, with excluded
	// regions already removed.
	HTML string
}

// Extractor extracts the main readable content from an HTML page.
type Extractor interface {
	// Extract processes raw HTML and returns its cleaned main content.
	// Extract never fails; when nothing can be found the content is empty.
	Extract(html string) *Extraction
}
