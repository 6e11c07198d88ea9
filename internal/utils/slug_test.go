package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSlug(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "punctuation collapses", title: "Hello World!!", want: "hello-world"},
		{name: "leading and trailing separators trimmed", title: "  --Go 1.22: What's New?--  ", want: "go-1-22-what-s-new"},
		{name: "already a slug", title: "already-a-slug", want: "already-a-slug"},
		{name: "non ascii letters are separators", title: "Café Déjà Vu", want: "caf-d-j-vu"},
		{name: "digits kept", title: "100 Days of Code", want: "100-days-of-code"},
		{name: "only symbols", title: "!!!", want: ""},
		{name: "empty", title: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveSlug(tt.title))
		})
	}
}

func TestDeriveSlug_Idempotent(t *testing.T) {
	for _, title := range []string{"Hello World!!", "A  B", "x--y", "Next.js & React"} {
		once := DeriveSlug(title)
		assert.Equal(t, once, DeriveSlug(once), "title %q", title)
	}
}

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr bool
	}{
		{name: "derived slug", slug: "hello-world"},
		{name: "dots and underscores", slug: "v1.2_notes"},
		{name: "mixed case", slug: "MyPost"},
		{name: "empty", slug: "", wantErr: true},
		{name: "path traversal", slug: "../etc/passwd", wantErr: true},
		{name: "separator", slug: "a/b", wantErr: true},
		{name: "backslash", slug: `a\b`, wantErr: true},
		{name: "hidden file", slug: ".hidden", wantErr: true},
		{name: "space", slug: "hello world", wantErr: true},
		{name: "too long", slug: string(make([]byte, 201)), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSlug(tt.slug)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
