package content

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Shivrajsoni/portfolio/internal/config"
)

// DateLayout is the layout used when the service stamps dates.
const DateLayout = "2006-01-02"

// dateLayouts are accepted when reading dates from frontmatter or requests.
var dateLayouts = []string{
	DateLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// Entry is implemented by every document kind. The shared fields live in
// Meta; kind-specific fields live on the variant that embeds it.
type Entry interface {
	// Base returns the shared record. It is never nil.
	Base() *Meta
	// Kind reports the document kind.
	Kind() Kind
	// Validate checks the fields required to write the document.
	Validate() error
}

// Meta is the shared record of every document kind.
//
// Fields tagged `yaml:"-"` are derived on read and never persisted.
// The yaml field order is the order of keys in the stored frontmatter.
type Meta struct {
	Slug      string `yaml:"-" json:"slug"`
	Title     string `yaml:"title" json:"title"`
	Date      string `yaml:"date" json:"date"`
	Excerpt   string `yaml:"excerpt" json:"excerpt"`
	Tags      Tags   `yaml:"tags" json:"tags"`
	Author    string `yaml:"author,omitempty" json:"author,omitempty"`
	Featured  bool   `yaml:"featured" json:"featured"`
	UpdatedAt string `yaml:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	ReadTime string `yaml:"-" json:"readTime"`
	Content  string `yaml:"-" json:"content,omitempty"` // raw Markdown body
	HTML     string `yaml:"-" json:"html,omitempty"`    // rendered body
}

// Base implements Entry for every type embedding Meta.
func (m *Meta) Base() *Meta {
	return m
}

// Normalize trims free-text fields and normalizes tags.
func (m *Meta) Normalize() {
	m.Title = strings.TrimSpace(m.Title)
	m.Excerpt = strings.TrimSpace(m.Excerpt)
	m.Author = strings.TrimSpace(m.Author)
	m.Date = strings.TrimSpace(m.Date)
	m.Tags = NormalizeTags(m.Tags)
}

// ParsedDate returns the document date, or the zero time when it cannot be parsed.
func (m *Meta) ParsedDate() time.Time {
	t, _ := ParseDate(m.Date)
	return t
}

func (m *Meta) validate() error {
	return validation.ValidateStruct(m,
		validation.Field(&m.Title, validation.Required, validation.Length(1, config.MaxTitleLength)),
		validation.Field(&m.Excerpt, validation.Required, validation.Length(1, config.MaxExcerptLength)),
		validation.Field(&m.Content, validation.Required),
		validation.Field(&m.Date, validation.By(validDate)),
		validation.Field(&m.Tags, validation.Each(validation.Length(1, config.MaxTagLength))),
	)
}

// ParseDate parses a frontmatter date in any accepted layout.
func ParseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func validDate(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, ok := ParseDate(s); !ok {
		return errors.New("must be a date such as 2024-06-01")
	}
	return nil
}
