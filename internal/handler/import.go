package handler

import (
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/Shivrajsoni/portfolio/internal/config"
	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/httputil"
)

// ImportHandler handles bulk import HTTP requests
type ImportHandler struct {
	importers map[models.Kind]services.ImportService
	logger    *slog.Logger
}

// NewImportHandler creates a new import handler with one import service per kind
func NewImportHandler(importers map[models.Kind]services.ImportService, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		importers: importers,
		logger:    logger,
	}
}

// ImportResponse represents the response for import operations
type ImportResponse struct {
	Success   bool                      `json:"success"`
	Summary   services.ImportSummary    `json:"summary"`
	Errors    []services.ImportError    `json:"errors"`
	Documents []services.ImportDocument `json:"documents"`
}

// Import creates documents from uploaded .md/.mdx/.txt/.html files or zip archives.
// POST /api/admin/import/{kind}
//
// Form fields "files" (or "file") carry the uploads.
// Query parameters:
//   - overwrite: optional, if "true" updates documents whose slug already exists
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	kind, ok := models.ParseKind(r.PathValue("kind"))
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "unknown content kind")
		return
	}
	importer, ok := h.importers[kind]
	if !ok {
		httputil.RespondError(w, http.StatusNotFound, "import not available for this kind")
		return
	}
	overwrite := r.URL.Query().Get("overwrite") == "true"

	r.Body = http.MaxBytesReader(w, r.Body, config.MaxImportBytes)
	if err := r.ParseMultipartForm(config.MaxImportBytes); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "failed to parse multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	var headers []*multipart.FileHeader
	headers = append(headers, r.MultipartForm.File["files"]...)
	headers = append(headers, r.MultipartForm.File["file"]...)
	if len(headers) == 0 {
		httputil.RespondError(w, http.StatusBadRequest, "no files provided")
		return
	}

	h.logger.Info("starting import",
		"kind", string(kind),
		"file_count", len(headers),
		"overwrite", overwrite,
	)

	// Files stay open until ProcessFiles returns
	uploadedFiles := make([]services.UploadedFile, 0, len(headers))
	for _, fileHeader := range headers {
		file, err := fileHeader.Open()
		if err != nil {
			h.logger.Error("failed to open uploaded file",
				"file", fileHeader.Filename,
				"error", err,
			)
			httputil.RespondError(w, http.StatusInternalServerError, "failed to open file "+fileHeader.Filename)
			return
		}
		defer func() { _ = file.Close() }()

		uploadedFiles = append(uploadedFiles, services.UploadedFile{
			Filename: fileHeader.Filename,
			Content:  file,
		})
	}

	result, err := importer.ProcessFiles(r.Context(), uploadedFiles, overwrite)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, ImportResponse{
		Success:   result.Summary.Failed == 0,
		Summary:   result.Summary,
		Errors:    result.Errors,
		Documents: result.Documents,
	})
}
