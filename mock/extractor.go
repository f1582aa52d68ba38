package mock

import "github.com/fwojciec/pagechat"

var _ pagechat.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of pagechat.Extractor.
type Extractor struct {
	ExtractFn func(html string) *pagechat.Extraction
}

func (e *Extractor) Extract(html string) *pagechat.Extraction {
	return e.ExtractFn(html)
}
