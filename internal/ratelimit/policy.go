package ratelimit

import (
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/config"
)

// Rule caps requests to a path and everything below it
type Rule struct {
	Path string
	Max  int
}

// Policy maps request paths to per-window maxima
type Policy struct {
	rules      []Rule
	defaultMax int
}

// NewPolicy creates a policy; the first matching rule wins
func NewPolicy(defaultMax int, rules ...Rule) *Policy {
	return &Policy{rules: rules, defaultMax: defaultMax}
}

// DefaultPolicy limits login attempts hardest, then blog writes, then
// every other admin endpoint
func DefaultPolicy() *Policy {
	return NewPolicy(config.RateLimitDefault,
		Rule{Path: "/api/admin/login", Max: config.RateLimitLogin},
		Rule{Path: "/api/admin/blogs", Max: config.RateLimitBlogs},
	)
}

// MaxFor returns the maximum for path
func (p *Policy) MaxFor(path string) int {
	for _, rule := range p.rules {
		if path == rule.Path || strings.HasPrefix(path, rule.Path+"/") {
			return rule.Max
		}
	}
	return p.defaultMax
}

// Key builds the limiter key for a client address and path
func Key(clientIP, path string) string {
	return clientIP + ":" + path
}
