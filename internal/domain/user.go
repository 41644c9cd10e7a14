package domain

import (
	"errors"
	"time"
)

// ErrInvalidToken is returned by a TokenVerifier for missing, malformed or expired tokens.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenIssuer issues tokens (e.g. JWT) for a settings owner.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}
