package filesystem

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/domain"
	"github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/repositories"
	"github.com/Shivrajsoni/portfolio/internal/utils"
)

// StoreConfig holds configuration shared by every kind's store
type StoreConfig struct {
	Root      string // Content root; each kind lives in its own subdirectory
	Extension string // Document file extension, including the dot
	Logger    *slog.Logger
}

// Store implements ContentRepository over one directory of frontmatter files.
// The directory is the only source of truth; nothing is cached between calls.
type Store[T content.Entry] struct {
	dir      string
	ext      string
	kind     content.Kind
	newEntry func() T
	logger   *slog.Logger
}

// NewStore creates a store for the kind produced by newEntry
func NewStore[T content.Entry](config *StoreConfig, newEntry func() T) *Store[T] {
	kind := newEntry().Kind()
	ext := config.Extension
	if ext == "" {
		ext = ".mdx"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Store[T]{
		dir:      filepath.Join(config.Root, kind.Dir()),
		ext:      ext,
		kind:     kind,
		newEntry: newEntry,
		logger:   logger.With("kind", string(kind)),
	}
}

var _ repositories.ContentRepository[*content.Blog] = (*Store[*content.Blog])(nil)

// Dir returns the directory holding this kind's documents
func (s *Store[T]) Dir() string {
	return s.dir
}

// List decodes every document in the directory in file name order.
// Files that cannot be read or decoded are logged and skipped.
func (s *Store[T]) List(ctx context.Context) ([]T, error) {
	slugs, err := s.Slugs(ctx)
	if err != nil {
		return nil, err
	}

	entries := make([]T, 0, len(slugs))
	for _, slug := range slugs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		entry, err := s.read(slug)
		if err != nil {
			s.logger.Warn("skipping unreadable document",
				"slug", slug,
				"error", err,
			)
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// Slugs lists the stems of every document file without decoding them
func (s *Store[T]) Slugs(ctx context.Context) ([]string, error) {
	files, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("read %s directory: %w", s.kind, err)
	}

	slugs := make([]string, 0, len(files))
	for _, f := range files {
		name := f.Name()
		if f.IsDir() || strings.HasPrefix(name, ".") || !strings.HasSuffix(name, s.ext) {
			continue
		}
		slug := strings.TrimSuffix(name, s.ext)
		if err := utils.ValidateSlug(slug); err != nil {
			s.logger.Warn("skipping document with an unusable file name",
				"file", name,
				"error", err,
			)
			continue
		}
		slugs = append(slugs, slug)
	}
	return slugs, nil
}

// Exists reports whether a document file with the slug exists
func (s *Store[T]) Exists(ctx context.Context, slug string) (bool, error) {
	path, err := s.path(slug)
	if err != nil {
		return false, err
	}
	_, err = os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("stat %s %q: %w", s.kind, slug, err)
}

// Get decodes one document
func (s *Store[T]) Get(ctx context.Context, slug string) (T, error) {
	var zero T
	if _, err := s.path(slug); err != nil {
		return zero, err
	}
	entry, err := s.read(slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, domain.NewNotFound(string(s.kind), slug)
		}
		return zero, err
	}
	return entry, nil
}

// Create writes a new document. An existing file is never overwritten.
func (s *Store[T]) Create(ctx context.Context, entry T) error {
	slug := entry.Base().Slug
	path, err := s.path(slug)
	if err != nil {
		return err
	}

	exists, err := s.Exists(ctx, slug)
	if err != nil {
		return err
	}
	if exists {
		return domain.NewConflict(string(s.kind), slug)
	}

	data, err := s.encode(entry)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s directory: %w", s.kind, err)
	}

	tmp, err := s.writeTemp(slug, data)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)

	// Link fails if the target appeared since the existence check
	if err := os.Link(tmp, path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return domain.NewConflict(string(s.kind), slug)
		}
		s.logger.Debug("hard link unavailable, falling back to rename",
			"slug", slug,
			"error", err,
		)
		if exists, statErr := s.Exists(ctx, slug); statErr == nil && exists {
			return domain.NewConflict(string(s.kind), slug)
		}
		if err := os.Rename(tmp, path); err != nil {
			return fmt.Errorf("write %s %q: %w", s.kind, slug, err)
		}
	}

	s.logger.Debug("document created", "slug", slug)
	return nil
}

// Update replaces an existing document atomically
func (s *Store[T]) Update(ctx context.Context, entry T) error {
	slug := entry.Base().Slug
	path, err := s.path(slug)
	if err != nil {
		return err
	}

	exists, err := s.Exists(ctx, slug)
	if err != nil {
		return err
	}
	if !exists {
		return domain.NewNotFound(string(s.kind), slug)
	}

	data, err := s.encode(entry)
	if err != nil {
		return err
	}
	tmp, err := s.writeTemp(slug, data)
	if err != nil {
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("write %s %q: %w", s.kind, slug, err)
	}

	s.logger.Debug("document updated", "slug", slug)
	return nil
}

// Delete removes a document file
func (s *Store[T]) Delete(ctx context.Context, slug string) error {
	path, err := s.path(slug)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewNotFound(string(s.kind), slug)
		}
		return fmt.Errorf("delete %s %q: %w", s.kind, slug, err)
	}

	s.logger.Debug("document deleted", "slug", slug)
	return nil
}

// path resolves a slug to its file, rejecting anything that could leave the directory
func (s *Store[T]) path(slug string) (string, error) {
	if err := utils.ValidateSlug(slug); err != nil {
		return "", &domain.ValidationError{Message: fmt.Sprintf("invalid slug: %v", err)}
	}
	return filepath.Join(s.dir, slug+s.ext), nil
}

func (s *Store[T]) read(slug string) (T, error) {
	var zero T
	data, err := os.ReadFile(filepath.Join(s.dir, slug+s.ext))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return zero, err
		}
		return zero, fmt.Errorf("read %s %q: %w", s.kind, slug, err)
	}

	entry := s.newEntry()
	body, err := utils.DecodeFrontmatter(data, entry)
	if err != nil {
		return zero, &domain.DecodeError{ResourceType: string(s.kind), Slug: slug, Err: err}
	}

	base := entry.Base()
	base.Slug = slug
	base.Content = body
	return entry, nil
}

func (s *Store[T]) encode(entry T) ([]byte, error) {
	base := entry.Base()
	data, err := utils.MarshalFrontmatter(base.Content, entry)
	if err != nil {
		return nil, fmt.Errorf("encode %s %q: %w", s.kind, base.Slug, err)
	}
	return data, nil
}

// writeTemp writes data to a hidden temp file next to the target so the
// final rename stays on one filesystem
func (s *Store[T]) writeTemp(slug string, data []byte) (string, error) {
	f, err := os.CreateTemp(s.dir, "."+slug+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file for %s %q: %w", s.kind, slug, err)
	}
	name := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("write temp file for %s %q: %w", s.kind, slug, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("sync temp file for %s %q: %w", s.kind, slug, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("close temp file for %s %q: %w", s.kind, slug, err)
	}
	return name, nil
}
