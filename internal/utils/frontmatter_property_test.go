//go:build property
// +build property

package utils

import (
	"reflect"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// TestFrontmatterProperties checks codec and slug laws over generated input
func TestFrontmatterProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("decode(encode(x)) == x", prop.ForAll(
		func(title, excerpt string, featured bool, tags []string, body string) bool {
			if strings.HasPrefix(body, FrontmatterDelimiter) {
				return true
			}
			meta := map[string]interface{}{
				"title":    title,
				"excerpt":  excerpt,
				"featured": featured,
				"tags":     tags,
			}
			encoded, err := EncodeFrontmatter(body, meta)
			if err != nil {
				return false
			}
			decoded, decodedBody, err := ParseFrontmatter(encoded)
			if err != nil {
				return false
			}
			return reflect.DeepEqual(meta, decoded) && body == decodedBody
		},
		gen.AnyString(),
		gen.AlphaString(),
		gen.Bool(),
		gen.SliceOfN(3, gen.AlphaString()),
		gen.AnyString(),
	))

	properties.Property("derived slugs match [a-z0-9]+(-[a-z0-9]+)*", prop.ForAll(
		func(title string) bool {
			slug := DeriveSlug(title)
			if slug == "" {
				return true
			}
			return !strings.HasPrefix(slug, "-") &&
				!strings.HasSuffix(slug, "-") &&
				!strings.Contains(slug, "--") &&
				strings.Trim(slug, "abcdefghijklmnopqrstuvwxyz0123456789-") == ""
		},
		gen.AnyString(),
	))

	properties.Property("slug derivation is idempotent", prop.ForAll(
		func(title string) bool {
			slug := DeriveSlug(title)
			return DeriveSlug(slug) == slug
		},
		gen.AnyString(),
	))

	properties.TestingRun(t)
}
