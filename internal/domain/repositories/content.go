package repositories

import (
	"context"

	"github.com/Shivrajsoni/portfolio/internal/domain/models/content"
)

// ContentRepository defines file access for one document kind.
// Implementations hold no cache: every call reads or writes storage.
type ContentRepository[T content.Entry] interface {
	// List decodes every document of the kind, body included, in storage order.
	// Documents that fail to decode are skipped, not reported.
	List(ctx context.Context) ([]T, error)

	// Exists reports whether a document with the slug is stored
	Exists(ctx context.Context, slug string) (bool, error)

	// Get decodes a single document, body included
	Get(ctx context.Context, slug string) (T, error)

	// Create stores a new document; fails with a conflict if the slug is taken
	Create(ctx context.Context, entry T) error

	// Update replaces a stored document; fails with not found if it is missing
	Update(ctx context.Context, entry T) error

	// Delete removes a stored document; fails with not found if it is missing
	Delete(ctx context.Context, slug string) error

	// Slugs lists stored slugs without decoding files
	Slugs(ctx context.Context) ([]string, error)
}
