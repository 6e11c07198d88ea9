package converter

import (
	"context"
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

// utf8BOM is prepended by some Windows editors and would hide the opening delimiter
const utf8BOM = "\ufeff"

// markdownConverter accepts Markdown and MDX documents, the storage format.
// Editors on other platforms leave a byte order mark or CRLF line endings
// behind; both are removed so stored files stay uniform.
type markdownConverter struct{}

// NewMarkdownConverter creates the converter for .md, .mdx and .markdown uploads.
func NewMarkdownConverter() services.ContentConverter {
	return &markdownConverter{}
}

func (c *markdownConverter) Convert(ctx context.Context, input []byte) (string, error) {
	text := strings.TrimPrefix(string(input), utf8BOM)
	return strings.ReplaceAll(text, "\r\n", "\n"), nil
}

func (c *markdownConverter) SupportedExtensions() []string {
	return []string{".md", ".mdx", ".markdown"}
}

func (c *markdownConverter) Name() string {
	return "markdown"
}

// HasFrontmatter marks uploads that may describe themselves in a frontmatter block
func (c *markdownConverter) HasFrontmatter() bool {
	return true
}
