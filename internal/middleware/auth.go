package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/Shivrajsoni/portfolio/internal/config"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/httputil"
)

// RequireAdmin rejects requests that do not present the admin token,
// either in the admin cookie or as an Authorization bearer token.
func RequireAdmin(gate services.AccessGate, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !gate.IsAuthenticated(AdminToken(r)) {
				logger.Info("admin request rejected",
					"path", r.URL.Path,
					"method", r.Method,
					"client_ip", httputil.ClientIP(r),
				)
				httputil.RespondError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminToken extracts the token a caller presented; the cookie wins over the header
func AdminToken(r *http.Request) string {
	if cookie, err := r.Cookie(config.AdminCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	header := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(header, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
