package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Shivrajsoni/portfolio/internal/httputil"
	"github.com/Shivrajsoni/portfolio/internal/ratelimit"
)

// RateLimit answers 429 once a client exhausts the window for a path.
// Clients are told apart by proxies.ClientIP; a nil proxies keys on the peer address.
// If the limiter backend fails the request is let through and the error logged.
func RateLimit(limiter ratelimit.Limiter, policy *ratelimit.Policy, window time.Duration, proxies *httputil.TrustedProxies, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := proxies.ClientIP(r)
			key := ratelimit.Key(ip, r.URL.Path)
			max := policy.MaxFor(r.URL.Path)

			allowed, err := limiter.Allow(r.Context(), key, max, time.Now())
			if err != nil {
				logger.Error("rate limiter unavailable",
					"key", key,
					"error", err,
				)
				next.ServeHTTP(w, r)
				return
			}
			if !allowed {
				logger.Warn("rate limit exceeded",
					"client_ip", ip,
					"path", r.URL.Path,
					"max", max,
				)
				w.Header().Set("Retry-After", strconv.Itoa(int(window.Seconds())))
				httputil.RespondError(w, http.StatusTooManyRequests,
					fmt.Sprintf("too many requests, try again in %s", window))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
