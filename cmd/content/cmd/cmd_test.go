package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSlugCommand(t *testing.T) {
	out, err := run(t, "slug", "Hello", "World!!")
	require.NoError(t, err)
	assert.Equal(t, "hello-world\n", out)

	_, err = run(t, "slug", "!!!")
	assert.Error(t, err)
}

func TestImportThenList(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(t.TempDir(), "first-post.md")
	require.NoError(t, os.WriteFile(src, []byte("---\ntitle: \"First Post\"\nexcerpt: \"Hi\"\ntags: [go]\n---\n\nBody.\n"), 0o644))

	out, err := run(t, "--dir", dir, "import", "blog", src)
	require.NoError(t, err, out)
	assert.Contains(t, out, "1 files: 1 created")
	assert.FileExists(t, filepath.Join(dir, "blog", "first-post.mdx"))

	out, err = run(t, "--dir", dir, "list", "blogs")
	require.NoError(t, err)
	assert.Contains(t, out, "first-post")
	assert.Contains(t, out, "First Post")

	out, err = run(t, "--dir", dir, "sitemap", "--site-url", "https://example.com")
	require.NoError(t, err)
	assert.Contains(t, out, "https://example.com/blog/first-post")
}

func TestUnknownKind(t *testing.T) {
	_, err := run(t, "list", "recipes")
	assert.Error(t, err)
}

func TestExportThenImport(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "projects"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "projects", "portfolio.mdx"),
		[]byte("---\ntitle: \"Portfolio\"\nexcerpt: \"This site\"\ntags: []\n---\n\nBody.\n"), 0o644))

	archive := filepath.Join(t.TempDir(), "projects.zip")
	out, err := run(t, "--dir", src, "export", "project", "-o", archive)
	require.NoError(t, err)
	assert.Contains(t, out, "1 documents written")

	dst := t.TempDir()
	out, err = run(t, "--dir", dst, "import", "project", archive)
	require.NoError(t, err, out)
	assert.FileExists(t, filepath.Join(dst, "projects", "portfolio.mdx"))
}
