package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// HTTPError defines errors that can be mapped to HTTP status codes.
type HTTPError interface {
	error
	StatusCode() int
}

// Domain error types implementing HTTPError interface
type (
	// NotFoundError indicates a document was not found
	NotFoundError struct {
		Message string
	}

	// ValidationError indicates invalid input
	ValidationError struct {
		Message string
	}

	// UnauthorizedError indicates a missing or invalid admin token
	UnauthorizedError struct {
		Message string
	}

	// RateLimitedError indicates the caller exhausted its request window
	RateLimitedError struct {
		Message string
	}
)

// Error implementations
func (e *NotFoundError) Error() string     { return e.Message }
func (e *ValidationError) Error() string   { return e.Message }
func (e *UnauthorizedError) Error() string { return e.Message }
func (e *RateLimitedError) Error() string  { return e.Message }

// StatusCode implementations (HTTPError interface)
func (e *NotFoundError) StatusCode() int     { return http.StatusNotFound }
func (e *ValidationError) StatusCode() int   { return http.StatusBadRequest }
func (e *UnauthorizedError) StatusCode() int { return http.StatusUnauthorized }
func (e *RateLimitedError) StatusCode() int  { return http.StatusTooManyRequests }

// Is allows errors.Is() to match the typed errors against their sentinels
func (e *NotFoundError) Is(target error) bool     { return target == ErrNotFound }
func (e *ValidationError) Is(target error) bool   { return target == ErrValidation }
func (e *UnauthorizedError) Is(target error) bool { return target == ErrUnauthorized }
func (e *RateLimitedError) Is(target error) bool  { return target == ErrRateLimited }

// Sentinel errors - use with errors.Is()
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("already exists")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrRateLimited  = errors.New("too many requests")
	ErrDecode       = errors.New("malformed document")
)

// ConflictError represents a slug collision within a document kind
type ConflictError struct {
	Message      string // Human-readable error message
	ResourceType string // Document kind (blog, project, proof-of-work)
	ResourceID   string // Slug of the existing document
}

// Error implements the error interface
func (e *ConflictError) Error() string {
	return e.Message
}

// StatusCode implements the HTTPError interface
func (e *ConflictError) StatusCode() int {
	return http.StatusConflict
}

// Is allows errors.Is() to match against ErrConflict
func (e *ConflictError) Is(target error) bool {
	return target == ErrConflict
}

// DecodeError reports a document file whose frontmatter could not be parsed.
// It is an internal failure: handlers log it and answer 500.
type DecodeError struct {
	ResourceType string
	Slug         string
	Err          error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s %q: %v", e.ResourceType, e.Slug, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is allows errors.Is() to match against ErrDecode
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// NewNotFound builds a NotFoundError for a slug of the given kind
func NewNotFound(resourceType, slug string) error {
	return &NotFoundError{Message: fmt.Sprintf("%s %q not found", resourceType, slug)}
}

// NewConflict builds a ConflictError for a slug of the given kind
func NewConflict(resourceType, slug string) error {
	return &ConflictError{
		Message:      fmt.Sprintf("%s with slug %q already exists", resourceType, slug),
		ResourceType: resourceType,
		ResourceID:   slug,
	}
}

// NewValidation builds a ValidationError from a formatted message
func NewValidation(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
