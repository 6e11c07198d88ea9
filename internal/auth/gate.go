package auth

import (
	"crypto/subtle"
	"log/slog"

	"github.com/Shivrajsoni/portfolio/internal/domain/services"
)

// StaticGate implements AccessGate with credentials fixed at startup.
// The issued token is the same for every login and never expires on the
// server side; the cookie lifetime is the only bound.
type StaticGate struct {
	adminID  string
	password string
	token    string
}

// NewStaticGate creates a gate from the configured admin credentials
func NewStaticGate(adminID, password, token string, logger *slog.Logger) services.AccessGate {
	if password == "" || token == "" {
		logger.Warn("admin password or token is empty; admin endpoints will reject every request")
	}
	return &StaticGate{
		adminID:  adminID,
		password: password,
		token:    token,
	}
}

// VerifyCredentials checks both the admin id and the password
func (g *StaticGate) VerifyCredentials(adminID, password string) bool {
	idOK := constantTimeEqual(adminID, g.adminID)
	passwordOK := g.Verify(password)
	return idOK && passwordOK
}

// Verify checks a secret against the admin password
func (g *StaticGate) Verify(secret string) bool {
	if g.password == "" {
		return false
	}
	return constantTimeEqual(secret, g.password)
}

// IssueToken returns the static admin token
func (g *StaticGate) IssueToken() string {
	return g.token
}

// IsAuthenticated reports whether token is the admin token. Empty tokens never match.
func (g *StaticGate) IsAuthenticated(token string) bool {
	if token == "" || g.token == "" {
		return false
	}
	return constantTimeEqual(token, g.token)
}

func constantTimeEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
