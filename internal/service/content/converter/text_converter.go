package converter

import (
	"context"
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

// textConverter converts plain text files to markdown.
// Plain text is valid Markdown apart from line endings.
type textConverter struct{}

// NewTextConverter creates a new text converter.
func NewTextConverter() services.ContentConverter {
	return &textConverter{}
}

// Convert normalizes Windows line endings and returns the text
func (c *textConverter) Convert(ctx context.Context, input []byte) (string, error) {
	return strings.ReplaceAll(string(input), "\r\n", "\n"), nil
}

func (c *textConverter) SupportedExtensions() []string {
	return []string{".txt", ".text"}
}

func (c *textConverter) Name() string {
	return "plaintext"
}
