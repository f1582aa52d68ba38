package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// skippedElements never contribute visible text.
var skippedElements = map[string]bool{
	"head": true, "title": true, "meta": true, "link": true,
	"script": true, "style": true, "noscript": true, "template": true,
	"iframe": true, "object": true, "embed": true, "canvas": true, "svg": true,
}

// blockElements start and end on their own line.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "caption": true, "center": true, "dd": true, "details": true,
	"dialog": true, "dir": true, "div": true, "dl": true, "dt": true,
	"fieldset": true, "figcaption": true, "figure": true, "footer": true,
	"form": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true,
	"h6": true, "header": true, "hgroup": true, "hr": true, "html": true,
	"legend": true, "li": true, "main": true, "menu": true, "nav": true,
	"ol": true, "pre": true, "section": true, "summary": true, "table": true,
	"tbody": true, "tfoot": true, "thead": true, "tr": true, "ul": true,
}

// VisibleText renders the visible text of every node in sel, approximating
// a browser's innerText: block elements are separated by line breaks,
// paragraphs by a blank line, and whitespace inside ordinary text is
// collapsed while preformatted text is kept as is.
func VisibleText(sel *goquery.Selection) string {
	var w textWriter
	for _, n := range sel.Nodes {
		w.node(n, false)
	}
	return w.String()
}

// VisibleTextFromHTML parses an HTML fragment or document and renders its
// visible text. Unparseable input yields an empty string.
func VisibleTextFromHTML(rawHTML string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}
	return VisibleText(doc.Selection)
}

// textWriter accumulates rendered text. Line breaks requested at block
// boundaries are merged so nested blocks do not stack blank lines.
type textWriter struct {
	sb      strings.Builder
	pending int
}

func (w *textWriter) String() string {
	return w.sb.String()
}

// lineBreaks requests at least n line breaks before the next text.
func (w *textWriter) lineBreaks(n int) {
	if n > w.pending {
		w.pending = n
	}
}

// text writes s, flushing pending line breaks first. Whitespace at the start
// of a line is dropped.
func (w *textWriter) text(s string) {
	if w.pending > 0 || w.sb.Len() == 0 || strings.HasSuffix(w.sb.String(), " ") {
		s = strings.TrimLeft(s, " ")
	}
	if s == "" {
		return
	}
	if w.pending > 0 && w.sb.Len() > 0 {
		w.sb.WriteString(strings.Repeat("\n", w.pending))
	}
	w.pending = 0
	w.sb.WriteString(s)
}

// lineBreak writes a forced line break.
func (w *textWriter) lineBreak() {
	if w.pending > 0 && w.sb.Len() > 0 {
		w.sb.WriteString(strings.Repeat("\n", w.pending))
	}
	w.pending = 0
	w.sb.WriteByte('\n')
}

func (w *textWriter) node(n *html.Node, pre bool) {
	switch n.Type {
	case html.TextNode:
		if pre {
			w.text(n.Data)
		} else {
			w.text(collapseSpaces(n.Data))
		}
		return
	case html.DocumentNode:
		w.children(n, pre)
		return
	case html.ElementNode:
	default:
		return
	}

	name := n.Data
	if skippedElements[name] || isHidden(n) {
		return
	}

	switch {
	case name == "br":
		w.lineBreak()
		return
	case name == "p":
		w.lineBreaks(2)
		w.children(n, pre)
		w.lineBreaks(2)
	case name == "pre":
		w.lineBreaks(1)
		w.children(n, true)
		w.lineBreaks(1)
	case blockElements[name]:
		w.lineBreaks(1)
		w.children(n, pre)
		w.lineBreaks(1)
	case name == "td" || name == "th":
		w.children(n, pre)
		if nextCell(n) {
			w.text("\t")
		}
	default:
		w.children(n, pre)
	}
}

func (w *textWriter) children(n *html.Node, pre bool) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.node(c, pre)
	}
}

// nextCell reports whether a table cell follows n in the same row.
func nextCell(n *html.Node) bool {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if s.Type == html.ElementNode && (s.Data == "td" || s.Data == "th") {
			return true
		}
	}
	return false
}

// isHidden reports whether n is hidden via the hidden attribute or an inline
// display:none / visibility:hidden style.
func isHidden(n *html.Node) bool {
	for _, attr := range n.Attr {
		switch attr.Key {
		case "hidden":
			return true
		case "style":
			style := strings.ToLower(strings.ReplaceAll(attr.Val, " ", ""))
			if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
				return true
			}
		}
	}
	return false
}

// collapseSpaces replaces each run of ASCII whitespace with a single space.
func collapseSpaces(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	space := false
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				sb.WriteByte(' ')
				space = true
			}
			continue
		}
		space = false
		sb.WriteRune(r)
	}
	return sb.String()
}
