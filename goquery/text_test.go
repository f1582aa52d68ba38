package goquery_test

import (
	"testing"

	"github.com/fwojciec/pagechat/goquery"
	"github.com/stretchr/testify/assert"
)

func TestVisibleTextFromHTML(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "separates block elements with line breaks",
			html: `<div>One</div><div>Two</div>`,
			want: "One\nTwo",
		},
		{
			name: "separates paragraphs with a blank line",
			html: `<p>One</p><p>Two</p>`,
			want: "One\n\nTwo",
		},
		{
			name: "does not stack breaks for nested blocks",
			html: `<div><div><div>One</div></div></div><div><section>Two</section></div>`,
			want: "One\nTwo",
		},
		{
			name: "collapses whitespace inside text",
			html: "<div>One   \n\n\n   Two</div>",
			want: "One Two",
		},
		{
			name: "preserves preformatted whitespace",
			html: "<pre>line 1\n\n  line 2</pre>",
			want: "line 1\n\n  line 2",
		},
		{
			name: "renders br as a line break",
			html: `<div>One<br>Two</div>`,
			want: "One\nTwo",
		},
		{
			name: "keeps inline elements on one line",
			html: `<p>Read <a href="/x">the <strong>docs</strong></a> now.</p>`,
			want: "Read the docs now.",
		},
		{
			name: "separates table cells with tabs",
			html: `<table><tr><td>A</td><td>B</td></tr><tr><td>C</td><td>D</td></tr></table>`,
			want: "A\tB\nC\tD",
		},
		{
			name: "skips scripts styles and templates",
			html: `<div>Shown<script>hidden()</script><style>p{}</style><template>tpl</template></div>`,
			want: "Shown",
		},
		{
			name: "skips hidden elements",
			html: `<div>Shown</div><div hidden>Gone</div><div style="display: none">Gone</div><span style="visibility:hidden">Gone</span>`,
			want: "Shown",
		},
		{
			name: "skips the document head",
			html: `<html><head><title>Title</title></head><body><p>Body</p></body></html>`,
			want: "Body",
		},
		{
			name: "returns empty string for empty input",
			html: ``,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, goquery.VisibleTextFromHTML(tt.html))
		})
	}
}
