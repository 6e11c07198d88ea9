package handler

import (
	"log/slog"
	"net/http"

	"github.com/Shivrajsoni/portfolio/internal/httputil"
	contentsvc "github.com/Shivrajsoni/portfolio/internal/service/content"
)

// SiteHandler serves cross-kind endpoints
type SiteHandler struct {
	site   *contentsvc.SiteService
	logger *slog.Logger
}

// NewSiteHandler creates a new site handler
func NewSiteHandler(site *contentsvc.SiteService, logger *slog.Logger) *SiteHandler {
	return &SiteHandler{
		site:   site,
		logger: logger,
	}
}

// HealthCheck reports that the server is up
// GET /health
func (h *SiteHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Tags returns the distinct tags of every kind
// GET /api/tags
func (h *SiteHandler) Tags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.site.Tags(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, tags)
}

// Sitemap serves the sitemaps.org document
// GET /sitemap.xml
func (h *SiteHandler) Sitemap(w http.ResponseWriter, r *http.Request) {
	doc, err := h.site.Sitemap(r.Context())
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(doc)
}
