package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Shivrajsoni/portfolio/internal/config"
	contentsvc "github.com/Shivrajsoni/portfolio/internal/service/content"
)

var (
	sitemapURL string
	sitemapOut string
)

var sitemapCmd = &cobra.Command{
	Use:   "sitemap",
	Short: "Write sitemap.xml for every stored document",
	RunE: func(cmd *cobra.Command, args []string) error {
		a := newApp()
		site := contentsvc.NewSiteService(sitemapURL, a.logger, a.blogs, a.projects, a.proofs)

		doc, err := site.Sitemap(cmd.Context())
		if err != nil {
			return err
		}
		if sitemapOut == "" || sitemapOut == "-" {
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		}
		return os.WriteFile(sitemapOut, doc, 0o644)
	},
}

func init() {
	rootCmd.AddCommand(sitemapCmd)
	sitemapCmd.Flags().StringVar(&sitemapURL, "site-url", config.Load().SiteURL, "base URL of the site")
	sitemapCmd.Flags().StringVarP(&sitemapOut, "out", "o", "", "output file (default stdout)")
}
