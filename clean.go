package pagechat

import (
	"strings"
	"unicode"
)

// CleanContent normalizes extracted page text.
//
// Whitespace runs spanning two or more line breaks become a single blank
// line; every other whitespace run becomes one space. Control characters
// other than newline count as whitespace. The result is trimmed and
// truncated to MaxContentLength characters. CleanContent is idempotent.
func CleanContent(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	n := 0
	inRun := false
	newlines := 0

	for _, r := range text {
		if isBlank(r) {
			if !inRun {
				inRun = true
				newlines = 0
			}
			if r == '\n' {
				newlines++
			}
			continue
		}

		if inRun {
			inRun = false
			// Leading whitespace is dropped.
			if n > 0 {
				if newlines >= 2 {
					sb.WriteString("\n\n")
					n += 2
				} else {
					sb.WriteByte(' ')
					n++
				}
			}
		}
		if n >= MaxContentLength {
			break
		}
		sb.WriteRune(r)
		n++
	}

	out := sb.String()
	if n > MaxContentLength {
		out = truncateRunes(out, MaxContentLength)
	}
	return strings.TrimRightFunc(out, isBlank)
}

// isBlank reports whether r separates words in cleaned content.
func isBlank(r rune) bool {
	return unicode.IsSpace(r) || unicode.IsControl(r)
}

// truncateRunes returns the first n runes of s.
func truncateRunes(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
