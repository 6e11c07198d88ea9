package services

import (
	"context"
	"io"
)

// UploadedFile represents a file uploaded by the admin for import
type UploadedFile struct {
	Filename string
	Content  io.Reader
}

// ImportService handles bulk document import for one kind
type ImportService interface {
	// ProcessFiles imports uploaded files (zip archives or individual files).
	// If overwrite is true, documents whose slug already exists are updated;
	// otherwise they are skipped.
	ProcessFiles(ctx context.Context, files []UploadedFile, overwrite bool) (*ImportResult, error)
}

// FileProcessor defines the strategy interface for processing uploaded files.
// Different implementations handle different file types (zip, individual files).
type FileProcessor interface {
	// CanProcess returns true if this processor can handle the given filename
	CanProcess(filename string) bool

	// Process imports one upload and returns per-document results
	Process(ctx context.Context, file io.Reader, filename string, overwrite bool) (*ImportResult, error)

	// Name returns the processor name for logging
	Name() string
}

// ContentConverter converts file content to Markdown.
// Implementations should be stateless and thread-safe.
type ContentConverter interface {
	// Convert transforms input content to Markdown
	Convert(ctx context.Context, input []byte) (markdown string, err error)

	// SupportedExtensions returns file extensions this converter handles,
	// including the leading dot (e.g., [".html", ".htm"])
	SupportedExtensions() []string

	// Name returns a human-readable converter name for logging
	Name() string
}

// ImportResult represents the result of a bulk import operation
type ImportResult struct {
	Summary   ImportSummary    `json:"summary"`
	Errors    []ImportError    `json:"errors"`
	Documents []ImportDocument `json:"documents"`
}

// Merge folds another result into r
func (r *ImportResult) Merge(other *ImportResult) {
	if other == nil {
		return
	}
	r.Summary.Created += other.Summary.Created
	r.Summary.Updated += other.Summary.Updated
	r.Summary.Skipped += other.Summary.Skipped
	r.Summary.Failed += other.Summary.Failed
	r.Summary.TotalFiles += other.Summary.TotalFiles
	r.Errors = append(r.Errors, other.Errors...)
	r.Documents = append(r.Documents, other.Documents...)
}

// NewImportResult returns an empty result with non-nil slices
func NewImportResult() *ImportResult {
	return &ImportResult{
		Errors:    []ImportError{},
		Documents: []ImportDocument{},
	}
}

// ImportSummary contains aggregate statistics for an import operation
type ImportSummary struct {
	Created    int `json:"created"`
	Updated    int `json:"updated"`
	Skipped    int `json:"skipped"`
	Failed     int `json:"failed"`
	TotalFiles int `json:"totalFiles"`
}

// ImportError represents an error that occurred during import
type ImportError struct {
	File  string `json:"file"`
	Error string `json:"error"`
}

// ImportDocument represents a processed document
type ImportDocument struct {
	File   string `json:"file"`
	Slug   string `json:"slug"`
	Title  string `json:"title"`
	Action string `json:"action"` // "created", "updated", or "skipped"
}
