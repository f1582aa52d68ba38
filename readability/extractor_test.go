package readability_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/fwojciec/pagechat"
	"github.com/fwojciec/pagechat/readability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_EmptyInput(t *testing.T) {
	t.Parallel()

	ext := readability.NewExtractor().Extract("")

	require.NotNil(t, ext)
	assert.Empty(t, ext.Content)
	assert.Equal(t, readability.Source, ext.Source)
}

func TestExtractor_RemovesNavigation(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/home">Home Nav Link</a><a href="/about">About Nav Link</a></nav>
<article><p>This is the main article content that should be preserved in the output.</p></article>
</body>
</html>`

	ext := readability.NewExtractor().Extract(html)

	assert.Contains(t, ext.Content, "main article content")
	assert.NotContains(t, ext.Content, "Home Nav Link")
	assert.NotContains(t, ext.Content, "About Nav Link")
}

func TestExtractor_RemovesFooter(t *testing.T) {
	t.Parallel()

	html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Article</h1>
<p>Article body with substantive content for readers who came to learn about the topic.</p>
<p>A second paragraph keeps the article long enough to be recognized as content.</p>
</article>
<footer><p>Copyright 2024 Example Corp</p></footer>
</body>
</html>`

	ext := readability.NewExtractor().Extract(html)

	assert.Contains(t, ext.Content, "substantive content")
	assert.NotContains(t, ext.Content, "Copyright 2024 Example Corp")
}

func TestExtractor_ContentIsClean(t *testing.T) {
	t.Parallel()

	html := `<html><body><article>
<p>First    paragraph
with wrapped    lines and enough words to count as the article body.</p>


<p>Second paragraph, also long enough to be part of the readable article text.</p>
</article></body></html>`

	ext := readability.NewExtractor().Extract(html)

	assert.Equal(t, pagechat.CleanContent(ext.Content), ext.Content)
	assert.NotContains(t, ext.Content, "\n\n\n")
	assert.NotContains(t, ext.Content, "  ")
}

func TestExtractor_BoundsContentLength(t *testing.T) {
	t.Parallel()

	html := "<html><body><article><p>" + strings.Repeat("lorem ipsum dolor sit amet ", 5000) + "</p></article></body></html>"

	ext := readability.NewExtractor().Extract(html)

	assert.LessOrEqual(t, utf8.RuneCountInString(ext.Content), pagechat.MaxContentLength)
}

func TestExtractor_ResolvesRelativeLinks(t *testing.T) {
	t.Parallel()

	html := `<html><body><article>
<p>Read the <a href="/guide">full guide</a> for details about every option this product offers to its users.</p>
<p>Another paragraph with plenty of words so the article is recognized as content.</p>
</article></body></html>`

	ext := readability.NewExtractor(readability.WithPageURL("https://example.com/docs/")).Extract(html)

	assert.Contains(t, ext.HTML, "https://example.com/guide")
}
