package config

import "time"

const (
	// MaxTitleLength is the maximum length for document titles.
	// Titles become slugs and file names, so they stay well below
	// common filesystem name limits.
	MaxTitleLength = 200

	// MaxExcerptLength is the maximum length for a supplied excerpt.
	MaxExcerptLength = 1000

	// MaxSlugLength is the maximum length for caller-supplied slugs.
	MaxSlugLength = 200

	// MaxTagLength is the maximum length of a single tag.
	MaxTagLength = 50

	// MaxLinkLength is the maximum length for project and proof-of-work links.
	MaxLinkLength = 2048

	// ExcerptFallbackLength is how many characters of the body are used
	// when a stored document has no excerpt.
	ExcerptFallbackLength = 150

	// WordsPerMinute drives the derived read time.
	WordsPerMinute = 200

	// MaxRequestBodyBytes caps JSON request bodies.
	MaxRequestBodyBytes = 10 << 20

	// MaxImportBytes caps multipart import uploads.
	MaxImportBytes = 32 << 20
)

const (
	// RateLimitWindow is the fixed window shared by every rate limit rule.
	RateLimitWindow = 15 * time.Minute

	// RateLimitDefault applies to admin endpoints without a specific rule.
	RateLimitDefault = 100

	// RateLimitLogin applies to POST /api/admin/login.
	RateLimitLogin = 5

	// RateLimitBlogs applies to the blog admin endpoints.
	RateLimitBlogs = 20
)

const (
	// AdminCookieName carries the admin token.
	AdminCookieName = "adminToken"

	// AdminCookieMaxAge is the lifetime of the admin cookie.
	AdminCookieMaxAge = 24 * time.Hour
)
