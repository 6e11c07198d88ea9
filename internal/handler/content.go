package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/domain"
	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/httputil"
)

// ContentHandler serves the public and admin endpoints of one document kind
type ContentHandler[T models.Entry] struct {
	service  services.ContentService[T]
	newEntry func() T
	listKey  string // response key of listings, e.g. "blogs"
	itemKey  string // response key of a single document, e.g. "blog"
	logger   *slog.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler[T models.Entry](service services.ContentService[T], newEntry func() T, logger *slog.Logger) *ContentHandler[T] {
	listKey, itemKey := responseKeys(service.Kind())
	return &ContentHandler[T]{
		service:  service,
		newEntry: newEntry,
		listKey:  listKey,
		itemKey:  itemKey,
		logger:   logger.With("kind", string(service.Kind())),
	}
}

func responseKeys(kind models.Kind) (list, item string) {
	switch kind {
	case models.KindBlog:
		return "blogs", "blog"
	case models.KindProject:
		return "projects", "project"
	default:
		return "proofOfWork", "proofOfWork"
	}
}

// Collection returns the route segment of the kind served
func (h *ContentHandler[T]) Collection() string {
	return h.service.Kind().Collection()
}

// List returns document metadata, newest first
// GET /api/{collection}?tag=go&featured=true
func (h *ContentHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	filter := services.ListFilter{
		Tag:          r.URL.Query().Get("tag"),
		FeaturedOnly: r.URL.Query().Get("featured") == "true",
	}

	entries, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{h.listKey: entries})
}

// Get returns one document with rendered HTML
// GET /api/{collection}/{slug}
func (h *ContentHandler[T]) Get(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, services.GetOptions{})
}

// AdminGet returns one document with rendered HTML and the raw Markdown body
// GET /api/admin/{collection}/{slug}
func (h *ContentHandler[T]) AdminGet(w http.ResponseWriter, r *http.Request) {
	h.get(w, r, services.GetOptions{IncludeRaw: true})
}

func (h *ContentHandler[T]) get(w http.ResponseWriter, r *http.Request, opts services.GetOptions) {
	slug := r.PathValue("slug")

	entry, err := h.service.Get(r.Context(), slug, opts)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{h.itemKey: entry})
}

// Create stores a new document; the slug is derived from the title
// POST /api/admin/{collection}
func (h *ContentHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	entry := h.newEntry()
	if err := parseJSON(w, r, entry); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	created, err := h.service.Create(r.Context(), entry)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"slug":    created.Base().Slug,
		h.itemKey: created,
	})
}

// Update replaces a document. The slug comes from the path, or from the
// body when the path has none.
// PUT /api/admin/{collection}/{slug}
// PUT /api/admin/{collection}
func (h *ContentHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	entry := h.newEntry()
	if err := parseJSON(w, r, entry); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	slug := r.PathValue("slug")
	if slug == "" {
		slug = strings.TrimSpace(entry.Base().Slug)
	}
	if slug == "" {
		handleError(w, r, h.logger, domain.NewValidation("slug is required"))
		return
	}

	updated, err := h.service.Update(r.Context(), slug, entry)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		h.itemKey: updated,
	})
}

// Delete removes a document
// DELETE /api/admin/{collection}/{slug}
// DELETE /api/admin/{collection} with {"slug": "..."}
func (h *ContentHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if slug == "" {
		var req struct {
			Slug string `json:"slug"`
		}
		if err := parseJSON(w, r, &req); err != nil {
			handleError(w, r, h.logger, err)
			return
		}
		slug = strings.TrimSpace(req.Slug)
	}
	if slug == "" {
		handleError(w, r, h.logger, domain.NewValidation("slug is required"))
		return
	}

	if err := h.service.Delete(r.Context(), slug); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	httputil.RespondNoContent(w)
}
