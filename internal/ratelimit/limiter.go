// Package ratelimit implements fixed-window request counting keyed by client and path.
package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether one more request is allowed for key.
//
// A window opens on the first request for a key and lasts for the
// limiter's window duration. Within a window the first max requests are
// allowed and the rest denied; the next request after the window ends
// opens a new one. now is supplied by the caller so windows are testable.
type Limiter interface {
	Allow(ctx context.Context, key string, max int, now time.Time) (bool, error)
}
