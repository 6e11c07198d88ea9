package content

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"log/slog"
	"strings"
	"time"

	models "github.com/Shivrajsoni/portfolio/internal/domain/models/content"
)

// KindIndex is the part of a ContentService the site index needs.
// Every ContentService[T] satisfies it regardless of T.
type KindIndex interface {
	Kind() models.Kind
	Tags(ctx context.Context) ([]string, error)
	Slugs(ctx context.Context) ([]string, error)
}

// TagIndex groups the distinct tags of every kind
type TagIndex struct {
	BlogTags        []string `json:"blogTags"`
	ProjectTags     []string `json:"projectTags"`
	ProofOfWorkTags []string `json:"proofOfWorkTags"`
}

// SiteService builds cross-kind views: the tag index and the sitemap
type SiteService struct {
	baseURL string
	kinds   []KindIndex
	now     func() time.Time
	logger  *slog.Logger
}

// NewSiteService creates a site service over the given kinds, in sitemap order
func NewSiteService(baseURL string, logger *slog.Logger, kinds ...KindIndex) *SiteService {
	return &SiteService{
		baseURL: strings.TrimRight(baseURL, "/"),
		kinds:   kinds,
		now:     time.Now,
		logger:  logger,
	}
}

// Tags returns the distinct tags of each kind
func (s *SiteService) Tags(ctx context.Context) (*TagIndex, error) {
	index := &TagIndex{
		BlogTags:        []string{},
		ProjectTags:     []string{},
		ProofOfWorkTags: []string{},
	}
	for _, kind := range s.kinds {
		tags, err := kind.Tags(ctx)
		if err != nil {
			return nil, fmt.Errorf("collect %s tags: %w", kind.Kind(), err)
		}
		switch kind.Kind() {
		case models.KindBlog:
			index.BlogTags = tags
		case models.KindProject:
			index.ProjectTags = tags
		case models.KindProofOfWork:
			index.ProofOfWorkTags = tags
		}
	}
	return index, nil
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapURLs lists the site root, each kind's listing page and every document page
func (s *SiteService) SitemapURLs(ctx context.Context) ([]string, error) {
	urls := []string{s.baseURL}
	for _, kind := range s.kinds {
		urls = append(urls, s.baseURL+kind.Kind().PagePath())
	}
	for _, kind := range s.kinds {
		slugs, err := kind.Slugs(ctx)
		if err != nil {
			return nil, fmt.Errorf("collect %s slugs: %w", kind.Kind(), err)
		}
		for _, slug := range slugs {
			urls = append(urls, s.baseURL+kind.Kind().PagePath()+"/"+slug)
		}
	}
	return urls, nil
}

// Sitemap renders the sitemaps.org XML document
func (s *SiteService) Sitemap(ctx context.Context) ([]byte, error) {
	urls, err := s.SitemapURLs(ctx)
	if err != nil {
		return nil, err
	}

	lastMod := s.now().Format(models.DateLayout)
	set := sitemapURLSet{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
		URLs:  make([]sitemapURL, 0, len(urls)),
	}
	for _, loc := range urls {
		set.URLs = append(set.URLs, sitemapURL{Loc: loc, LastMod: lastMod})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteString("\n")

	s.logger.Debug("sitemap generated", "urls", len(urls))
	return buf.Bytes(), nil
}
