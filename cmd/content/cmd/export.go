package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Shivrajsoni/portfolio/internal/utils"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export <kind>",
	Short: "Write every document of a kind to a zip archive",
	Long: `export writes the stored files of a kind to a zip archive that the
import command (or POST /api/admin/import/{kind}) accepts unchanged.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKindArg(args[0])
		if err != nil {
			return err
		}
		if exportOut == "" {
			exportOut = kind.Dir() + ".zip"
		}

		f, err := os.Create(exportOut)
		if err != nil {
			return err
		}
		n, err := utils.ZipDocuments(f, filepath.Join(contentDir, kind.Dir()), extension, kind.Dir())
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d documents written to %s\n", n, exportOut)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "archive path (default <kind dir>.zip)")
}
