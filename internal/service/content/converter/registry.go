package converter

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/utils"
)

// FrontmatterSource is implemented by converters whose output may open with
// a frontmatter block describing the document.
type FrontmatterSource interface {
	HasFrontmatter() bool
}

// ConverterRegistry maps upload extensions to converters and turns uploads
// into document bodies. Safe for concurrent use.
type ConverterRegistry struct {
	mu         sync.RWMutex
	converters map[string]services.ContentConverter // key: lowercase extension with dot
}

// NewConverterRegistry creates a registry with the Markdown, text and HTML converters registered
func NewConverterRegistry() *ConverterRegistry {
	registry := &ConverterRegistry{
		converters: make(map[string]services.ContentConverter),
	}

	registry.Register(NewMarkdownConverter())
	registry.Register(NewTextConverter())
	registry.Register(NewHTMLConverter())

	return registry
}

// Register associates a converter with its extensions. Later registrations win.
func (r *ConverterRegistry) Register(converter services.ContentConverter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range converter.SupportedExtensions() {
		r.converters[normalizeExt(ext)] = converter
	}
}

// GetConverter returns the converter for an extension (case-insensitive), or nil
func (r *ConverterRegistry) GetConverter(fileExt string) services.ContentConverter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.converters[normalizeExt(fileExt)]
}

// Supports reports whether an upload named filename can become a document
func (r *ConverterRegistry) Supports(filename string) bool {
	return r.GetConverter(path.Ext(filename)) != nil
}

// Decode converts an upload to Markdown. When the format can carry
// frontmatter, the block is decoded into entry and stripped from the body.
// Decode returns the document body.
func (r *ConverterRegistry) Decode(ctx context.Context, filename string, data []byte, entry models.Entry) (string, error) {
	ext := path.Ext(filename)
	converter := r.GetConverter(ext)
	if converter == nil {
		return "", fmt.Errorf("unsupported file type: %q", ext)
	}

	markdown, err := converter.Convert(ctx, data)
	if err != nil {
		return "", fmt.Errorf("failed to convert file: %v", err)
	}

	if source, ok := converter.(FrontmatterSource); ok && source.HasFrontmatter() {
		markdown, err = utils.DecodeFrontmatter([]byte(markdown), entry)
		if err != nil {
			return "", fmt.Errorf("failed to read frontmatter: %v", err)
		}
	}
	return markdown, nil
}

// SupportedExtensions returns every registered extension, sorted
func (r *ConverterRegistry) SupportedExtensions() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.converters))
	for ext := range r.converters {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(ext)
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
