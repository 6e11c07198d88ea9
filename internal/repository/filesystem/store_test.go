package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shivrajsoni/portfolio/internal/domain"
	"github.com/Shivrajsoni/portfolio/internal/domain/models/content"
)

func newTestStore(t *testing.T) *Store[*content.Blog] {
	t.Helper()
	return NewStore(&StoreConfig{
		Root:      t.TempDir(),
		Extension: ".mdx",
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, content.NewBlog)
}

func newBlog(slug, title, date string) *content.Blog {
	blog := content.NewBlog()
	blog.Slug = slug
	blog.Title = title
	blog.Date = date
	blog.Excerpt = "Excerpt of " + title
	blog.Tags = content.Tags{"Go"}
	blog.Content = "# " + title + "\n\nBody.\n"
	return blog
}

func TestStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Create(ctx, newBlog("hello-world", "Hello World!!", "2024-06-01")))

	raw, err := os.ReadFile(filepath.Join(store.Dir(), "hello-world.mdx"))
	require.NoError(t, err)
	assert.Equal(t, "---\n"+
		"title: \"Hello World!!\"\n"+
		"date: \"2024-06-01\"\n"+
		"excerpt: \"Excerpt of Hello World!!\"\n"+
		"tags: [\"Go\"]\n"+
		"featured: false\n"+
		"---\n\n"+
		"# Hello World!!\n\nBody.\n", string(raw))

	got, err := store.Get(ctx, "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "hello-world", got.Slug)
	assert.Equal(t, "Hello World!!", got.Title)
	assert.Equal(t, content.Tags{"Go"}, got.Tags)
	assert.Equal(t, "# Hello World!!\n\nBody.\n", got.Content)
}

func TestStore_CreateConflictKeepsOriginal(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Create(ctx, newBlog("post", "First", "2024-01-01")))

	err := store.Create(ctx, newBlog("post", "Second", "2024-01-02"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))

	var conflict *domain.ConflictError
	require.True(t, errors.As(err, &conflict))
	assert.Equal(t, "post", conflict.ResourceID)

	got, err := store.Get(ctx, "post")
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)
}

func TestStore_UpdateMissing(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	err := store.Update(ctx, newBlog("ghost", "Ghost", "2024-01-01"))
	assert.True(t, errors.Is(err, domain.ErrNotFound))

	_, statErr := os.Stat(filepath.Join(store.Dir(), "ghost.mdx"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestStore_UpdateReplacesFile(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Create(ctx, newBlog("post", "First", "2024-01-01")))

	updated := newBlog("post", "Renamed", "2024-01-01")
	updated.Featured = true
	require.NoError(t, store.Update(ctx, updated))

	got, err := store.Get(ctx, "post")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", got.Title)
	assert.True(t, got.Featured)

	// No temp files left behind
	files, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	assert.Len(t, files, 1)
}

func TestStore_Delete(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Create(ctx, newBlog("post", "Post", "2024-01-01")))
	require.NoError(t, store.Delete(ctx, "post"))

	exists, err := store.Exists(ctx, "post")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.True(t, errors.Is(store.Delete(ctx, "post"), domain.ErrNotFound))
}

func TestStore_GetMissing(t *testing.T) {
	_, err := newTestStore(t).Get(context.Background(), "nope")
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestStore_RejectsUnsafeSlugs(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	for _, slug := range []string{"../escape", "a/b", ".hidden", ""} {
		_, err := store.Get(ctx, slug)
		assert.True(t, errors.Is(err, domain.ErrValidation), "slug %q", slug)

		err = store.Create(ctx, newBlog(slug, "x", "2024-01-01"))
		assert.True(t, errors.Is(err, domain.ErrValidation), "slug %q", slug)
	}
}

func TestStore_ListSkipsCorruptAndForeignFiles(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	require.NoError(t, store.Create(ctx, newBlog("good", "Good", "2024-01-01")))

	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "broken.mdx"), []byte("---\ntitle: [oops\n---\n\nx"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "notes.txt"), []byte("ignored"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), ".good-123.tmp"), []byte("ignored"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(store.Dir(), "drafts.mdx"), 0o755))

	entries, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "good", entries[0].Slug)

	_, err = store.Get(ctx, "broken")
	assert.True(t, errors.Is(err, domain.ErrDecode))

	slugs, err := store.Slugs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"broken", "good"}, slugs)
}

func TestStore_ListMissingDirectory(t *testing.T) {
	entries, err := newTestStore(t).List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestStore_ListHonorsCancellation(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.Create(context.Background(), newBlog("a", "A", "2024-01-01")))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.List(ctx)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestStore_KindFields(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&StoreConfig{Root: t.TempDir()}, content.NewProofOfWork)

	pow := content.NewProofOfWork()
	pow.Slug = "merged-pr"
	pow.Title = "Merged PR"
	pow.Excerpt = "Fixed a bug"
	pow.Content = "Details"
	pow.Type = content.ProofOfWorkOSS
	pow.Organization = "golang"
	require.NoError(t, store.Create(ctx, pow))

	_, err := os.Stat(filepath.Join(filepath.Dir(store.Dir()), "proofofwork", "merged-pr.mdx"))
	require.NoError(t, err)

	got, err := store.Get(ctx, "merged-pr")
	require.NoError(t, err)
	assert.Equal(t, content.ProofOfWorkOSS, got.Type)
	assert.Equal(t, "golang", got.Organization)
	assert.Equal(t, content.KindProofOfWork, got.Kind())
}

func TestStore_ConcurrentCreateHasOneWinner(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)

	const writers = 16
	errs := make([]error, writers)
	var wg sync.WaitGroup
	start := make(chan struct{})
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			errs[i] = store.Create(ctx, newBlog("race", fmt.Sprintf("Writer %d", i), "2024-01-01"))
		}(i)
	}
	close(start)
	wg.Wait()

	winner := -1
	for i, err := range errs {
		if err == nil {
			require.Equal(t, -1, winner, "writers %d and %d both succeeded", winner, i)
			winner = i
			continue
		}
		assert.ErrorIs(t, err, domain.ErrConflict, "writer %d", i)
	}
	require.NotEqual(t, -1, winner, "no writer succeeded")

	got, err := store.Get(ctx, "race")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("Writer %d", winner), got.Title)

	leftovers, err := filepath.Glob(filepath.Join(store.Dir(), ".*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestStore_WarnsOnUnusableFileNames(t *testing.T) {
	var logs bytes.Buffer
	store := NewStore(&StoreConfig{
		Root:      t.TempDir(),
		Extension: ".mdx",
		Logger:    slog.New(slog.NewTextHandler(&logs, nil)),
	}, content.NewBlog)

	require.NoError(t, os.MkdirAll(store.Dir(), 0o755))
	raw := "---\ntitle: \"Spaced\"\nexcerpt: \"e\"\n---\n\nBody.\n"
	require.NoError(t, os.WriteFile(filepath.Join(store.Dir(), "My Post.mdx"), []byte(raw), 0o644))

	entries, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), `file="My Post.mdx"`)
}
