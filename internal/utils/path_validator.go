package utils

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/config"
)

var (
	// Slugs name files inside a kind directory, so separators are never allowed
	slugRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)
)

// ValidateSlug validates a slug supplied by a caller (URL segment or request body)
// before it is turned into a file path.
func ValidateSlug(slug string) error {
	if slug == "" {
		return fmt.Errorf("slug cannot be empty")
	}

	if len(slug) > config.MaxSlugLength {
		return fmt.Errorf("slug exceeds maximum length of %d characters", config.MaxSlugLength)
	}

	if !slugRegex.MatchString(slug) {
		return fmt.Errorf("slug contains invalid characters (only letters, digits, dots, hyphens and underscores allowed)")
	}

	// Hidden files and temp files start with a dot
	if strings.HasPrefix(slug, ".") {
		return fmt.Errorf("slug cannot start with a dot")
	}

	return nil
}
