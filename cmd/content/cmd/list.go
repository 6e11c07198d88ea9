package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

var (
	listTag      string
	listFeatured bool
)

var listCmd = &cobra.Command{
	Use:   "list <kind>",
	Short: "List documents of a kind, newest first",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, err := parseKindArg(args[0])
		if err != nil {
			return err
		}

		entries, err := newApp().list(cmd.Context(), kind, services.ListFilter{
			Tag:          listTag,
			FeaturedOnly: listFeatured,
		})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if jsonOut {
			return printJSON(out, entries)
		}

		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "DATE\tSLUG\tTITLE\tTAGS")
		for _, entry := range entries {
			meta := entry.Base()
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", meta.Date, meta.Slug, meta.Title, strings.Join(meta.Tags, ", "))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVar(&listTag, "tag", "", "only documents with this tag")
	listCmd.Flags().BoolVar(&listFeatured, "featured", false, "only featured documents")
}
