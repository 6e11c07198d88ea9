package converter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
)

func TestConverterRegistry_Routing(t *testing.T) {
	registry := NewConverterRegistry()

	tests := []struct {
		ext  string
		want string
	}{
		{ext: ".md", want: "markdown"},
		{ext: ".MDX", want: "markdown"},
		{ext: ".txt", want: "plaintext"},
		{ext: ".htm", want: "html"},
	}
	for _, tt := range tests {
		t.Run(tt.ext, func(t *testing.T) {
			converter := registry.GetConverter(tt.ext)
			require.NotNil(t, converter)
			assert.Equal(t, tt.want, converter.Name())
		})
	}

	assert.Nil(t, registry.GetConverter(".pdf"))

	assert.True(t, registry.Supports("notes/post.MD"))
	assert.False(t, registry.Supports("report.pdf"))
	assert.False(t, registry.Supports("README"))

	_, err := registry.Decode(context.Background(), "report.pdf", []byte("x"), models.NewBlog())
	assert.Error(t, err)

	assert.Contains(t, registry.SupportedExtensions(), ".mdx")
}

func TestHTMLConverter_SanitizesAndConverts(t *testing.T) {
	out, err := NewHTMLConverter().Convert(context.Background(),
		[]byte(`<h1>Title</h1><p>Hello <strong>world</strong></p><script>alert(1)</script>`))
	require.NoError(t, err)

	assert.Contains(t, out, "# Title")
	assert.Contains(t, out, "**world**")
	assert.NotContains(t, out, "alert")
	assert.NotContains(t, out, "<script>")
}

func TestTextConverter_NormalizesLineEndings(t *testing.T) {
	out, err := NewTextConverter().Convert(context.Background(), []byte("a\r\nb"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb", out)
}

func TestConverterRegistry_Decode(t *testing.T) {
	registry := NewConverterRegistry()

	tests := []struct {
		name      string
		filename  string
		input     string
		wantTitle string
		wantBody  string
	}{
		{
			name:      "markdown with frontmatter",
			filename:  "post.mdx",
			input:     "---\ntitle: \"From File\"\ntags: [go]\n---\n\nBody.\n",
			wantTitle: "From File",
			wantBody:  "Body.\n",
		},
		{
			name:      "byte order mark and CRLF",
			filename:  "post.md",
			input:     "\ufeff---\r\ntitle: \"Windows\"\r\n---\r\n\r\nLine one\r\nLine two\r\n",
			wantTitle: "Windows",
			wantBody:  "Line one\nLine two\n",
		},
		{
			name:     "text keeps delimiter lines as body",
			filename: "notes.txt",
			input:    "---\ntitle: no\n---\n",
			wantBody: "---\ntitle: no\n---\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := models.NewBlog()
			body, err := registry.Decode(context.Background(), tt.filename, []byte(tt.input), entry)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTitle, entry.Title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestConverterRegistry_DecodeMalformedFrontmatter(t *testing.T) {
	_, err := NewConverterRegistry().Decode(context.Background(), "post.md",
		[]byte("---\ntitle: \"unterminated\"\n"), models.NewBlog())
	assert.ErrorContains(t, err, "frontmatter")
}
