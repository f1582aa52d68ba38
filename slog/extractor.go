package slog

import (
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/pagechat"
)

// Ensure LoggingExtractor implements pagechat.Extractor.
var _ pagechat.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor and logs which region won.
type LoggingExtractor struct {
	next   pagechat.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next pagechat.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the source region and
// content length in characters.
func (e *LoggingExtractor) Extract(html string) (ext *pagechat.Extraction) {
	defer func(begin time.Time) {
		attrs := []any{"bytes", len(html), "duration", time.Since(begin)}
		if ext != nil {
			attrs = append(attrs,
				"source", ext.Source,
				"chars", utf8.RuneCountInString(ext.Content),
			)
		}
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html)
}
