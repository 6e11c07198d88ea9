package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_GFM(t *testing.T) {
	html, err := NewRenderer(RendererOptions{}).Render("# Getting Started\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n~~old~~ and https://example.com\n\n- [x] done\n")
	require.NoError(t, err)

	assert.Contains(t, html, `<h1 id="getting-started">Getting Started</h1>`)
	assert.Contains(t, html, "<table>")
	assert.Contains(t, html, "<del>old</del>")
	assert.Contains(t, html, `<a href="https://example.com">https://example.com</a>`)
	assert.Contains(t, html, `type="checkbox"`)
}

func TestRenderer_RawHTML(t *testing.T) {
	body := "<div class=\"note\">hi</div>\n"

	safe, err := NewRenderer(RendererOptions{}).Render(body)
	require.NoError(t, err)
	assert.NotContains(t, safe, `<div class="note">`)

	unsafe, err := NewRenderer(RendererOptions{UnsafeHTML: true}).Render(body)
	require.NoError(t, err)
	assert.Contains(t, unsafe, `<div class="note">`)
}

func TestRenderer_Deterministic(t *testing.T) {
	r := NewRenderer(RendererOptions{})
	first, err := r.Render("## Same\n\ntext")
	require.NoError(t, err)
	second, err := r.Render("## Same\n\ntext")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestContentAnalyzer(t *testing.T) {
	analyzer := NewContentAnalyzer()

	tests := []struct {
		name  string
		words int
		want  string
	}{
		{name: "empty", words: 0, want: "1 min read"},
		{name: "exactly one minute", words: 200, want: "1 min read"},
		{name: "rounds up", words: 201, want: "2 min read"},
		{name: "long", words: 1000, want: "5 min read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := ""
			for i := 0; i < tt.words; i++ {
				body += "word "
			}
			assert.Equal(t, tt.words, analyzer.CountWords(body))
			assert.Equal(t, tt.want, analyzer.ReadTime(body))
		})
	}

	assert.Equal(t, "short...", analyzer.Excerpt("short"))
	assert.Equal(t, "Hello world", PlainText("# Hello\n\n**world**"))
}
