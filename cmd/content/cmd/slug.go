package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Shivrajsoni/portfolio/internal/utils"
)

var slugCmd = &cobra.Command{
	Use:   "slug <title>",
	Short: "Print the slug a title produces",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slug := utils.DeriveSlug(strings.Join(args, " "))
		if slug == "" {
			return fmt.Errorf("title produces an empty slug")
		}
		fmt.Fprintln(cmd.OutOrStdout(), slug)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(slugCmd)
}
