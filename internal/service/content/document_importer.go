package content

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/service/content/converter"
	"github.com/Shivrajsoni/portfolio/internal/utils"
)

// Import actions reported per document
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionSkipped = "skipped"
)

// documentImporter turns one uploaded file into a document of kind T.
// Both the individual and the zip processors delegate to it.
type documentImporter[T models.Entry] struct {
	service           services.ContentService[T]
	newEntry          func() T
	converterRegistry *converter.ConverterRegistry
	analyzer          services.ContentAnalyzer
	titleCaser        cases.Caser
	logger            *slog.Logger
}

func newDocumentImporter[T models.Entry](
	service services.ContentService[T],
	newEntry func() T,
	converterRegistry *converter.ConverterRegistry,
	analyzer services.ContentAnalyzer,
	logger *slog.Logger,
) *documentImporter[T] {
	return &documentImporter[T]{
		service:           service,
		newEntry:          newEntry,
		converterRegistry: converterRegistry,
		analyzer:          analyzer,
		titleCaser:        cases.Title(language.English),
		logger:            logger,
	}
}

func (d *documentImporter[T]) supports(filename string) bool {
	return d.converterRegistry.Supports(filename)
}

// importFile converts data and creates, updates or skips the document it
// describes, recording the outcome in result. Failures never abort a batch.
func (d *documentImporter[T]) importFile(ctx context.Context, filename string, data []byte, overwrite bool, result *services.ImportResult) {
	result.Summary.TotalFiles++

	entry, err := d.buildEntry(ctx, filename, data)
	if err != nil {
		d.addError(result, filename, err.Error())
		return
	}
	base := entry.Base()

	slug := utils.DeriveSlug(base.Title)
	exists, err := d.service.Exists(ctx, slug)
	if err != nil {
		d.addError(result, filename, fmt.Sprintf("failed to check for existing document: %v", err))
		return
	}

	if exists && !overwrite {
		result.Summary.Skipped++
		result.Documents = append(result.Documents, services.ImportDocument{
			File:   filename,
			Slug:   slug,
			Title:  base.Title,
			Action: ActionSkipped,
		})
		d.logger.Debug("import skipped existing document",
			"file", filename,
			"slug", slug,
		)
		return
	}

	if exists {
		updated, err := d.service.Update(ctx, slug, entry)
		if err != nil {
			d.addError(result, filename, fmt.Sprintf("failed to update document: %v", err))
			return
		}
		result.Summary.Updated++
		result.Documents = append(result.Documents, services.ImportDocument{
			File:   filename,
			Slug:   updated.Base().Slug,
			Title:  updated.Base().Title,
			Action: ActionUpdated,
		})
		d.logger.Debug("import updated document", "file", filename, "slug", slug)
		return
	}

	created, err := d.service.Create(ctx, entry)
	if err != nil {
		d.addError(result, filename, fmt.Sprintf("failed to create document: %v", err))
		return
	}
	result.Summary.Created++
	result.Documents = append(result.Documents, services.ImportDocument{
		File:   filename,
		Slug:   created.Base().Slug,
		Title:  created.Base().Title,
		Action: ActionCreated,
	})
	d.logger.Debug("import created document", "file", filename, "slug", created.Base().Slug)
}

// buildEntry converts a file into an entry. Markdown files may carry their
// own frontmatter; missing titles come from the file name and missing
// excerpts from the body.
func (d *documentImporter[T]) buildEntry(ctx context.Context, filename string, data []byte) (T, error) {
	var zero T
	entry := d.newEntry()
	markdown, err := d.converterRegistry.Decode(ctx, filename, data, entry)
	if err != nil {
		return zero, err
	}

	base := entry.Base()
	base.Content = markdown
	if strings.TrimSpace(base.Title) == "" {
		base.Title = d.titleFromFilename(filename)
	}
	if strings.TrimSpace(base.Excerpt) == "" && strings.TrimSpace(markdown) != "" {
		base.Excerpt = d.analyzer.Excerpt(PlainText(markdown))
	}
	return entry, nil
}

// titleFromFilename maps "my-first_post.md" to "My First Post"
func (d *documentImporter[T]) titleFromFilename(filename string) string {
	name := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	name = strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return d.titleCaser.String(strings.Join(strings.Fields(name), " "))
}

func (d *documentImporter[T]) addError(result *services.ImportResult, file string, errorMsg string) {
	result.Summary.Failed++
	result.Errors = append(result.Errors, services.ImportError{
		File:  file,
		Error: errorMsg,
	})

	d.logger.Warn("file processing failed",
		"file", file,
		"error", errorMsg,
	)
}
