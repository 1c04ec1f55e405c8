package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims mirrors the fields the platform API puts into its bearer tokens. The
// storefront never verifies the signature (the server is the verifier); it
// only inspects expiry and the role hint to decide whether a persisted session
// is still worth presenting.
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type Inspector struct {
	parser *jwt.Parser
}

func NewInspector() *Inspector {
	return &Inspector{parser: jwt.NewParser()}
}

// Inspect decodes the token claims without signature verification.
func (i *Inspector) Inspect(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := i.parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// Stale reports whether a persisted token should no longer be trusted: it is
// unparseable or its expiry has passed. Tokens without an expiry claim are
// treated as live; the server still rejects them if it disagrees.
func (i *Inspector) Stale(tokenString string, now time.Time) bool {
	claims, err := i.Inspect(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return now.After(claims.ExpiresAt.Time)
}

var ErrEmptyToken = errors.New("auth: empty token")

// RoleOf extracts the role claim, failing on empty tokens so callers fall back
// to anonymous instead of guessing.
func (i *Inspector) RoleOf(tokenString string) (string, error) {
	if tokenString == "" {
		return "", ErrEmptyToken
	}
	claims, err := i.Inspect(tokenString)
	if err != nil {
		return "", err
	}
	return claims.Role, nil
}
