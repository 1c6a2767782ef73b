package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingToken   = errors.New("missing token")
	ErrMalformedToken = errors.New("malformed token")
)

// Claims mirrors the subset of the booking backend's JWT payload this
// client cares about. The backend signs and verifies its own tokens; we
// only read them to decide whether a stored credential is still worth
// attaching to a request.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Inspector decodes backend-issued tokens without verifying the signature.
// Signature verification stays server-side: this client never holds the
// backend's key material, so the only honest local checks are structural
// ones (well-formed token, expiry).
type Inspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser(), now: time.Now}
}

// Inspect parses the token and returns its claims. A malformed token is an
// error; an expired one is returned with Expired reporting true so callers
// can drop the session instead of sending a doomed request.
func (i *Inspector) Inspect(token string) (*Claims, error) {
	trimmed := strings.TrimSpace(token)
	if trimmed == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(trimmed, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}
	return claims, nil
}

// Expired reports whether the token carried an exp claim in the past.
// Tokens without exp are treated as live; the backend rejects them if not.
func (i *Inspector) Expired(claims *Claims) bool {
	if claims == nil {
		return true
	}
	exp := claims.RegisteredClaims.ExpiresAt
	return exp != nil && !exp.Time.After(i.now())
}
