package content

import (
	"context"
	"fmt"
	"io"

	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

// individualFileProcessor processes single .md/.mdx/.txt/.html uploads
type individualFileProcessor[T models.Entry] struct {
	importer *documentImporter[T]
}

// CanProcess returns true if a converter is registered for the extension
func (p *individualFileProcessor[T]) CanProcess(filename string) bool {
	return p.importer.supports(filename)
}

// Process imports a single file as a document
func (p *individualFileProcessor[T]) Process(ctx context.Context, file io.Reader, filename string, overwrite bool) (*services.ImportResult, error) {
	result := services.NewImportResult()

	data, err := io.ReadAll(file)
	if err != nil {
		result.Summary.TotalFiles++
		p.importer.addError(result, filename, fmt.Sprintf("failed to read file: %v", err))
		return result, nil // Return result, not error (allows batch to continue)
	}

	p.importer.importFile(ctx, filename, data, overwrite, result)
	return result, nil
}

func (p *individualFileProcessor[T]) Name() string {
	return "IndividualFileProcessor"
}
