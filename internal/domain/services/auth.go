package services

// AccessGate guards admin operations with a single configured secret.
//
// There is exactly one valid token platform-wide and it never rotates while
// the process runs: this is a single-operator design, not access control.
type AccessGate interface {
	// VerifyCredentials checks an admin id and password
	VerifyCredentials(adminID, password string) bool

	// Verify checks a supplied secret against the admin password
	Verify(secret string) bool

	// IssueToken returns the static admin token
	IssueToken() string

	// IsAuthenticated checks a token presented by a caller
	IsAuthenticated(token string) bool
}
