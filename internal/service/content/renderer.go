package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

// RendererOptions controls Markdown rendering
type RendererOptions struct {
	// UnsafeHTML passes raw HTML blocks in the Markdown through to the output.
	// Content is authored by the site owner only.
	UnsafeHTML bool
}

type markdownRenderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a GitHub-flavored Markdown renderer with heading anchors
func NewRenderer(opts RendererOptions) services.Renderer {
	rendererOptions := []goldmark.Option{
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
	}
	if opts.UnsafeHTML {
		rendererOptions = append(rendererOptions, goldmark.WithRendererOptions(html.WithUnsafe()))
	}
	return &markdownRenderer{md: goldmark.New(rendererOptions...)}
}

// Render converts a Markdown body to an HTML fragment
func (r *markdownRenderer) Render(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}
