package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

var importOverwrite bool

var importCmd = &cobra.Command{
	Use:   "import <kind> <file>...",
	Short: "Import .md, .mdx, .txt, .html or .zip files",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKindArg(args[0])
		if err != nil {
			return err
		}

		files := make([]services.UploadedFile, 0, len(args)-1)
		for _, path := range args[1:] {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			files = append(files, services.UploadedFile{Filename: filepath.Base(path), Content: f})
		}

		result, err := newApp().importers[kind].ProcessFiles(cmd.Context(), files, importOverwrite)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOut {
			return printJSON(out, result)
		}

		for _, doc := range result.Documents {
			fmt.Fprintf(out, "%-8s %s -> %s\n", doc.Action, doc.File, doc.Slug)
		}
		for _, e := range result.Errors {
			fmt.Fprintf(out, "error    %s: %s\n", e.File, e.Error)
		}
		s := result.Summary
		fmt.Fprintf(out, "%d files: %d created, %d updated, %d skipped, %d failed\n",
			s.TotalFiles, s.Created, s.Updated, s.Skipped, s.Failed)

		if s.Failed > 0 {
			return fmt.Errorf("%d files failed to import", s.Failed)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importOverwrite, "overwrite", false, "update documents whose slug already exists")
}
