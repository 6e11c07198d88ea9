package utils

import (
	"regexp"
	"strings"
)

var nonSlugRun = regexp.MustCompile(`[^a-z0-9]+`)

// DeriveSlug maps a title to a URL-safe identifier: lowercase, every run of
// characters outside [a-z0-9] collapsed to a single hyphen, no leading or
// trailing hyphen. Titles without letters or digits yield an empty slug.
func DeriveSlug(title string) string {
	slug := nonSlugRun.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
