package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Shivrajsoni/portfolio/internal/config"
	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/repository/filesystem"
	contentsvc "github.com/Shivrajsoni/portfolio/internal/service/content"
	"github.com/Shivrajsoni/portfolio/internal/service/content/converter"
)

var (
	contentDir string
	extension  string
	jsonOut    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "content",
	Short: "Manage portfolio content on disk",
	Long: `content works directly on the content directory used by the server.

  - list documents of a kind
  - preview the slug a title produces
  - import Markdown, text, HTML or zip files
  - write the sitemap`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	_ = godotenv.Load()
	cfg := config.Load()

	rootCmd.PersistentFlags().StringVar(&contentDir, "dir", cfg.ContentDir, "content root directory")
	rootCmd.PersistentFlags().StringVar(&extension, "ext", cfg.ContentExtension, "document file extension")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "JSON output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log to stderr")
}

// app wires the stores and services for every kind
type app struct {
	blogs     services.ContentService[*models.Blog]
	projects  services.ContentService[*models.Project]
	proofs    services.ContentService[*models.ProofOfWork]
	importers map[models.Kind]services.ImportService
	logger    *slog.Logger
}

func newApp() *app {
	var logOut io.Writer = io.Discard
	if verbose {
		logOut = os.Stderr
	}
	logger := slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug}))

	storeConfig := &filesystem.StoreConfig{Root: contentDir, Extension: extension, Logger: logger}
	renderer := contentsvc.NewRenderer(contentsvc.RendererOptions{})
	analyzer := contentsvc.NewContentAnalyzer()
	opts := contentsvc.ServiceOptions{DefaultAuthor: os.Getenv("DEFAULT_AUTHOR")}

	a := &app{
		logger:   logger,
		blogs:    contentsvc.NewContentService[*models.Blog](filesystem.NewStore(storeConfig, models.NewBlog), renderer, analyzer, opts, logger),
		projects: contentsvc.NewContentService[*models.Project](filesystem.NewStore(storeConfig, models.NewProject), renderer, analyzer, opts, logger),
		proofs:   contentsvc.NewContentService[*models.ProofOfWork](filesystem.NewStore(storeConfig, models.NewProofOfWork), renderer, analyzer, opts, logger),
	}

	converters := converter.NewConverterRegistry()
	converters.Register(converter.NewMarkdownConverter())
	converters.Register(converter.NewTextConverter())
	converters.Register(converter.NewHTMLConverter())

	a.importers = map[models.Kind]services.ImportService{
		models.KindBlog:        contentsvc.NewImportService[*models.Blog](a.blogs, models.NewBlog, converters, analyzer, logger),
		models.KindProject:     contentsvc.NewImportService[*models.Project](a.projects, models.NewProject, converters, analyzer, logger),
		models.KindProofOfWork: contentsvc.NewImportService[*models.ProofOfWork](a.proofs, models.NewProofOfWork, converters, analyzer, logger),
	}
	return a
}

// list returns the metadata of every document of kind
func (a *app) list(ctx context.Context, kind models.Kind, filter services.ListFilter) ([]models.Entry, error) {
	switch kind {
	case models.KindBlog:
		return toEntries(a.blogs.List(ctx, filter))
	case models.KindProject:
		return toEntries(a.projects.List(ctx, filter))
	default:
		return toEntries(a.proofs.List(ctx, filter))
	}
}

func toEntries[T models.Entry](items []T, err error) ([]models.Entry, error) {
	if err != nil {
		return nil, err
	}
	entries := make([]models.Entry, len(items))
	for i, item := range items {
		entries[i] = item
	}
	return entries, nil
}

func parseKindArg(arg string) (models.Kind, error) {
	kind, ok := models.ParseKind(arg)
	if !ok {
		return "", fmt.Errorf("unknown kind %q (want blog, project or proof-of-work)", arg)
	}
	return kind, nil
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
