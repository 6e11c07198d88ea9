package content

import (
	"context"
	"fmt"
	"log/slog"

	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/service/content/converter"
)

// importService implements the ImportService interface for one kind
type importService struct {
	processors *FileProcessorRegistry
	logger     *slog.Logger
}

// NewImportService creates an import service that stores documents through service
func NewImportService[T models.Entry](
	service services.ContentService[T],
	newEntry func() T,
	converterRegistry *converter.ConverterRegistry,
	analyzer services.ContentAnalyzer,
	logger *slog.Logger,
) services.ImportService {
	logger = logger.With("kind", string(service.Kind()))
	importer := newDocumentImporter(service, newEntry, converterRegistry, analyzer, logger)

	// Zip is registered first so archives never reach the per-file processor
	processors := NewFileProcessorRegistry()
	processors.Register(&zipFileProcessor[T]{importer: importer})
	processors.Register(&individualFileProcessor[T]{importer: importer})

	return &importService{
		processors: processors,
		logger:     logger,
	}
}

// ProcessFiles imports each upload with the processor that accepts it.
// Unsupported uploads and broken archives are reported per file.
func (s *importService) ProcessFiles(ctx context.Context, files []services.UploadedFile, overwrite bool) (*services.ImportResult, error) {
	result := services.NewImportResult()

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		processor := s.processors.GetProcessor(file.Filename)
		if processor == nil {
			result.Summary.TotalFiles++
			result.Summary.Skipped++
			result.Errors = append(result.Errors, services.ImportError{
				File:  file.Filename,
				Error: fmt.Sprintf("unsupported file type: %s", file.Filename),
			})
			continue
		}

		fileResult, err := processor.Process(ctx, file.Content, file.Filename, overwrite)
		if err != nil {
			s.logger.Warn("import processor failed",
				"processor", processor.Name(),
				"file", file.Filename,
				"error", err,
			)
			result.Summary.TotalFiles++
			result.Summary.Failed++
			result.Errors = append(result.Errors, services.ImportError{
				File:  file.Filename,
				Error: err.Error(),
			})
			continue
		}
		result.Merge(fileResult)
	}

	s.logger.Info("import complete",
		"files", len(files),
		"created", result.Summary.Created,
		"updated", result.Summary.Updated,
		"skipped", result.Summary.Skipped,
		"failed", result.Summary.Failed,
	)
	return result, nil
}
