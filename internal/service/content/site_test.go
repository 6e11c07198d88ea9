package content

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/repository/filesystem"
)

func TestSiteService(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	config := &filesystem.StoreConfig{Root: root, Logger: discardLogger()}
	opts := ServiceOptions{Now: func() time.Time { return fixedNow }}
	renderer := NewRenderer(RendererOptions{})
	analyzer := NewContentAnalyzer()

	blogs := NewContentService[*models.Blog](filesystem.NewStore(config, models.NewBlog), renderer, analyzer, opts, discardLogger())
	projects := NewContentService[*models.Project](filesystem.NewStore(config, models.NewProject), renderer, analyzer, opts, discardLogger())
	pows := NewContentService[*models.ProofOfWork](filesystem.NewStore(config, models.NewProofOfWork), renderer, analyzer, opts, discardLogger())

	_, err := blogs.Create(ctx, draft("Hello World", "x", "Go, Web", "body"))
	require.NoError(t, err)

	project := models.NewProject()
	project.Title = "Portfolio"
	project.Excerpt = "x"
	project.Content = "body"
	project.Tags = models.Tags{"Next.js"}
	_, err = projects.Create(ctx, project)
	require.NoError(t, err)

	site := NewSiteService("https://example.com/", discardLogger(), blogs, projects, pows)
	site.now = func() time.Time { return fixedNow }

	tags, err := site.Tags(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Web"}, tags.BlogTags)
	assert.Equal(t, []string{"Next.js"}, tags.ProjectTags)
	assert.Equal(t, []string{}, tags.ProofOfWorkTags)

	urls, err := site.SitemapURLs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://example.com",
		"https://example.com/blog",
		"https://example.com/projects",
		"https://example.com/proof-of-work",
		"https://example.com/blog/hello-world",
		"https://example.com/projects/portfolio",
	}, urls)

	xmlDoc, err := site.Sitemap(ctx)
	require.NoError(t, err)
	assert.Contains(t, string(xmlDoc), `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	assert.Contains(t, string(xmlDoc), "<loc>https://example.com/blog/hello-world</loc>")
	assert.Contains(t, string(xmlDoc), "<lastmod>2024-07-01</lastmod>")
}
