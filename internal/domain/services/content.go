package services

import (
	"context"

	"github.com/Shivrajsoni/portfolio/internal/domain/models/content"
)

// ContentService handles document business logic for one kind
type ContentService[T content.Entry] interface {
	// Kind reports the document kind served
	Kind() content.Kind

	// List returns metadata (no body, no HTML) sorted by date, newest first
	List(ctx context.Context, filter ListFilter) ([]T, error)

	// Exists reports whether a document with the slug exists
	Exists(ctx context.Context, slug string) (bool, error)

	// Get returns a document with its body rendered to HTML.
	// The raw Markdown body is kept only when opts.IncludeRaw is set.
	Get(ctx context.Context, slug string, opts GetOptions) (T, error)

	// Create validates the entry, derives its slug from the title and stores it
	Create(ctx context.Context, entry T) (T, error)

	// Update validates the entry and replaces the stored document with the slug
	Update(ctx context.Context, slug string, entry T) (T, error)

	// Delete removes the document with the slug
	Delete(ctx context.Context, slug string) error

	// Tags returns the distinct tags used by documents of the kind
	Tags(ctx context.Context) ([]string, error)

	// Slugs returns every stored slug
	Slugs(ctx context.Context) ([]string, error)
}

// ListFilter narrows a listing
type ListFilter struct {
	Tag          string // Only documents carrying the tag (case-insensitive)
	FeaturedOnly bool   // Only featured documents
}

// GetOptions controls what Get returns
type GetOptions struct {
	IncludeRaw bool // Keep the raw Markdown body (admin editing)
}
