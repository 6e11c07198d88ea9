package content

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/Shivrajsoni/portfolio/internal/config"
	"github.com/Shivrajsoni/portfolio/internal/domain"
	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/repositories"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/utils"
)

// ServiceOptions holds the tunables shared by every kind's service
type ServiceOptions struct {
	DefaultAuthor string           // Stamped on documents created without an author
	Now           func() time.Time // Clock used for date stamps; time.Now when nil
}

// contentService implements the ContentService interface for one kind
type contentService[T models.Entry] struct {
	repo          repositories.ContentRepository[T]
	renderer      services.Renderer
	analyzer      services.ContentAnalyzer
	kind          models.Kind
	defaultAuthor string
	now           func() time.Time
	logger        *slog.Logger
}

// NewContentService creates a new content service
func NewContentService[T models.Entry](
	repo repositories.ContentRepository[T],
	renderer services.Renderer,
	analyzer services.ContentAnalyzer,
	opts ServiceOptions,
	logger *slog.Logger,
) services.ContentService[T] {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	// Kind only reads the receiver type, so the nil value is enough
	var zero T
	kind := zero.Kind()

	return &contentService[T]{
		repo:          repo,
		renderer:      renderer,
		analyzer:      analyzer,
		kind:          kind,
		defaultAuthor: strings.TrimSpace(opts.DefaultAuthor),
		now:           now,
		logger:        logger.With("kind", string(kind)),
	}
}

func (s *contentService[T]) Kind() models.Kind {
	return s.kind
}

// List returns metadata for every readable document, newest first.
// Documents with unparseable dates sort last; ties keep directory order.
func (s *contentService[T]) List(ctx context.Context, filter services.ListFilter) ([]T, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	tag := strings.TrimSpace(filter.Tag)
	result := make([]T, 0, len(entries))
	for _, entry := range entries {
		base := entry.Base()
		if filter.FeaturedOnly && !base.Featured {
			continue
		}
		if tag != "" && !base.Tags.Contains(tag) {
			continue
		}
		s.applyDefaults(base)
		base.Content = ""
		base.HTML = ""
		result = append(result, entry)
	}

	sortByDateDesc(result)
	return result, nil
}

func (s *contentService[T]) Exists(ctx context.Context, slug string) (bool, error) {
	if err := utils.ValidateSlug(slug); err != nil {
		return false, nil
	}
	return s.repo.Exists(ctx, slug)
}

// Get returns one document with its body rendered
func (s *contentService[T]) Get(ctx context.Context, slug string, opts services.GetOptions) (T, error) {
	var zero T
	if err := utils.ValidateSlug(slug); err != nil {
		return zero, domain.NewNotFound(string(s.kind), slug)
	}

	entry, err := s.repo.Get(ctx, slug)
	if err != nil {
		return zero, err
	}

	base := entry.Base()
	s.applyDefaults(base)

	html, err := s.renderer.Render(base.Content)
	if err != nil {
		s.logger.Error("failed to render document",
			"slug", slug,
			"error", err,
		)
		return zero, fmt.Errorf("render %s %q: %w", s.kind, slug, err)
	}
	base.HTML = html
	if !opts.IncludeRaw {
		base.Content = ""
	}
	return entry, nil
}

// Create validates the entry, derives its slug from the title and stores it.
// Nothing is written when validation fails.
func (s *contentService[T]) Create(ctx context.Context, entry T) (T, error) {
	var zero T
	base := entry.Base()
	base.Normalize()

	if base.Date == "" {
		base.Date = s.today()
	}
	if base.Author == "" {
		base.Author = s.defaultAuthor
	}
	base.UpdatedAt = ""
	base.HTML = ""

	if err := entry.Validate(); err != nil {
		return zero, &domain.ValidationError{Message: err.Error()}
	}

	slug := utils.DeriveSlug(base.Title)
	if slug == "" {
		return zero, domain.NewValidation("title %q does not produce a usable slug: it needs at least one letter or digit", base.Title)
	}
	if len(slug) > config.MaxSlugLength {
		return zero, domain.NewValidation("title produces a slug longer than %d characters", config.MaxSlugLength)
	}
	base.Slug = slug

	if err := s.repo.Create(ctx, entry); err != nil {
		return zero, err
	}

	base.ReadTime = s.analyzer.ReadTime(base.Content)
	s.logger.Info("document created", "slug", slug)
	return entry, nil
}

// Update replaces the stored document with the slug. The slug never changes.
// The stored date is kept unless the caller supplies one; updatedAt is stamped.
func (s *contentService[T]) Update(ctx context.Context, slug string, entry T) (T, error) {
	var zero T
	if err := utils.ValidateSlug(slug); err != nil {
		return zero, domain.NewNotFound(string(s.kind), slug)
	}

	base := entry.Base()
	base.Normalize()
	base.Slug = slug
	base.HTML = ""

	if err := entry.Validate(); err != nil {
		return zero, &domain.ValidationError{Message: err.Error()}
	}

	existing, err := s.repo.Get(ctx, slug)
	switch {
	case err == nil:
		current := existing.Base()
		if base.Date == "" {
			base.Date = current.Date
		}
		if base.Author == "" {
			base.Author = current.Author
		}
	case errors.Is(err, domain.ErrDecode):
		// A corrupt file is replaced outright
		s.logger.Warn("overwriting unreadable document",
			"slug", slug,
			"error", err,
		)
	default:
		return zero, err
	}

	if base.Date == "" {
		base.Date = s.today()
	}
	if base.Author == "" {
		base.Author = s.defaultAuthor
	}
	base.UpdatedAt = s.today()

	if err := s.repo.Update(ctx, entry); err != nil {
		return zero, err
	}

	base.ReadTime = s.analyzer.ReadTime(base.Content)
	s.logger.Info("document updated", "slug", slug)
	return entry, nil
}

func (s *contentService[T]) Delete(ctx context.Context, slug string) error {
	if err := utils.ValidateSlug(slug); err != nil {
		return domain.NewNotFound(string(s.kind), slug)
	}
	if err := s.repo.Delete(ctx, slug); err != nil {
		return err
	}
	s.logger.Info("document deleted", "slug", slug)
	return nil
}

// Tags returns the distinct tags of the kind sorted case-insensitively.
// The first spelling seen wins when tags differ only by case.
func (s *contentService[T]) Tags(ctx context.Context) ([]string, error) {
	entries, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	tags := make([]string, 0)
	for _, entry := range entries {
		for _, tag := range entry.Base().Tags {
			key := strings.ToLower(tag)
			if seen[key] {
				continue
			}
			seen[key] = true
			tags = append(tags, tag)
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
	return tags, nil
}

func (s *contentService[T]) Slugs(ctx context.Context) ([]string, error) {
	return s.repo.Slugs(ctx)
}

// applyDefaults fills fields a hand-edited file may lack and derives the read time
func (s *contentService[T]) applyDefaults(base *models.Meta) {
	if strings.TrimSpace(base.Title) == "" {
		base.Title = "Untitled"
	}
	if strings.TrimSpace(base.Excerpt) == "" {
		base.Excerpt = s.analyzer.Excerpt(base.Content)
	}
	if strings.TrimSpace(base.Date) == "" {
		base.Date = s.today()
	}
	if base.Tags == nil {
		base.Tags = models.Tags{}
	}
	base.ReadTime = s.analyzer.ReadTime(base.Content)
}

func (s *contentService[T]) today() string {
	return s.now().Format(models.DateLayout)
}

func sortByDateDesc[T models.Entry](entries []T) {
	sort.SliceStable(entries, func(i, j int) bool {
		di, iok := models.ParseDate(entries[i].Base().Date)
		dj, jok := models.ParseDate(entries[j].Base().Date)
		if iok != jok {
			return iok
		}
		if !iok {
			return false
		}
		return di.After(dj)
	})
}
