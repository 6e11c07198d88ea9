package content

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/config"
	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

// zipFileProcessor imports every supported file of a zip archive.
// Folder structure inside the archive is ignored: slugs come from titles.
type zipFileProcessor[T models.Entry] struct {
	importer *documentImporter[T]
	// maxEntryBytes caps each uncompressed entry; config.MaxImportBytes when zero
	maxEntryBytes int64
}

// CanProcess returns true for .zip files
func (p *zipFileProcessor[T]) CanProcess(filename string) bool {
	return strings.EqualFold(path.Ext(filename), ".zip")
}

// Process extracts and imports documents from a zip file
func (p *zipFileProcessor[T]) Process(ctx context.Context, file io.Reader, filename string, overwrite bool) (*services.ImportResult, error) {
	zipData, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read zip file: %w", err)
	}

	zipFile, err := zip.NewReader(bytes.NewReader(zipData), int64(len(zipData)))
	if err != nil {
		return nil, fmt.Errorf("failed to open zip file: %w", err)
	}

	result := services.NewImportResult()
	for _, zipEntry := range zipFile.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if zipEntry.FileInfo().IsDir() || isHiddenPath(zipEntry.Name) {
			continue
		}

		if !p.importer.supports(zipEntry.Name) {
			p.importer.logger.Debug("skipping unsupported file type", "file", zipEntry.Name)
			result.Summary.Skipped++
			result.Summary.TotalFiles++
			continue
		}

		p.processZipEntry(ctx, zipEntry, overwrite, result)
	}

	p.importer.logger.Info("zip file processing complete",
		"filename", filename,
		"created", result.Summary.Created,
		"updated", result.Summary.Updated,
		"skipped", result.Summary.Skipped,
		"failed", result.Summary.Failed,
		"total_files", result.Summary.TotalFiles,
	)
	return result, nil
}

func (p *zipFileProcessor[T]) Name() string {
	return "ZipFileProcessor"
}

func (p *zipFileProcessor[T]) processZipEntry(ctx context.Context, file *zip.File, overwrite bool, result *services.ImportResult) {
	fileReader, err := file.Open()
	if err != nil {
		result.Summary.TotalFiles++
		p.importer.addError(result, file.Name, fmt.Sprintf("failed to open file: %v", err))
		return
	}
	defer fileReader.Close()

	limit := p.entryLimit()
	if file.UncompressedSize64 > uint64(limit) {
		result.Summary.TotalFiles++
		p.importer.addError(result, file.Name, fmt.Sprintf("file exceeds %d bytes uncompressed", limit))
		return
	}

	// The header size is not trusted: the read itself stops one byte past the limit
	data, err := io.ReadAll(io.LimitReader(fileReader, limit+1))
	if err != nil {
		result.Summary.TotalFiles++
		p.importer.addError(result, file.Name, fmt.Sprintf("failed to read file: %v", err))
		return
	}
	if int64(len(data)) > limit {
		result.Summary.TotalFiles++
		p.importer.addError(result, file.Name, fmt.Sprintf("file exceeds %d bytes uncompressed", limit))
		return
	}

	p.importer.importFile(ctx, file.Name, data, overwrite, result)
}

func (p *zipFileProcessor[T]) entryLimit() int64 {
	if p.maxEntryBytes > 0 {
		return p.maxEntryBytes
	}
	return config.MaxImportBytes
}

// isHiddenPath reports archive metadata such as __MACOSX/ or .DS_Store
func isHiddenPath(name string) bool {
	for _, part := range strings.Split(name, "/") {
		if strings.HasPrefix(part, ".") || part == "__MACOSX" {
			return true
		}
	}
	return false
}
