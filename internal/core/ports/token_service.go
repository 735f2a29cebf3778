package ports

import "time"

// Claims is the verified content of a session token.
type Claims struct {
	Subject   string
	Role      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates signed, time-bounded session tokens.
// The server is stateless with respect to tokens: there is no revocation list.
type TokenService interface {
	Issue(subject, role string) (string, error)
	// Validate verifies signature, structure, and expiry. Every failure mode
	// collapses to domain.ErrInvalidToken so callers cannot distinguish a
	// tampered token from an expired one.
	Validate(token string) (*Claims, error)
}
