package handler

import (
	"log/slog"
	"net/http"

	"github.com/Shivrajsoni/portfolio/internal/config"
	"github.com/Shivrajsoni/portfolio/internal/domain"
	"github.com/Shivrajsoni/portfolio/internal/domain/services"
	"github.com/Shivrajsoni/portfolio/internal/httputil"
)

// AuthHandler handles admin login and logout
type AuthHandler struct {
	gate         services.AccessGate
	secureCookie bool
	logger       *slog.Logger
}

// NewAuthHandler creates a new auth handler. secureCookie marks the admin
// cookie Secure and should be set in production.
func NewAuthHandler(gate services.AccessGate, secureCookie bool, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		gate:         gate,
		secureCookie: secureCookie,
		logger:       logger,
	}
}

// LoginRequest carries admin credentials
type LoginRequest struct {
	AdminID  string `json:"adminId"`
	Password string `json:"password"`
}

// Login checks credentials and sets the admin cookie
// POST /api/admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := parseJSON(w, r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if !h.gate.VerifyCredentials(req.AdminID, req.Password) {
		h.logger.Warn("admin login failed", "client_ip", httputil.ClientIP(r))
		handleError(w, r, h.logger, &domain.UnauthorizedError{Message: "invalid credentials"})
		return
	}

	http.SetCookie(w, h.cookie(h.gate.IssueToken(), int(config.AdminCookieMaxAge.Seconds())))
	h.logger.Info("admin logged in", "client_ip", httputil.ClientIP(r))
	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// Logout expires the admin cookie
// POST /api/admin/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.cookie("", -1))
	httputil.RespondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (h *AuthHandler) cookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     config.AdminCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteStrictMode,
	}
}
