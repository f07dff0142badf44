package utils // helpers for session token creation and verification

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens

	"github.com/iliyamo/club-manager/internal/model"
)

// Identity is the caller information embedded in a session token.  It
// is decoded by the session middleware and attached to the request
// context so handlers never touch raw claims.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Name     string `json:"name"`
}

// ErrInvalidToken is returned by ParseSessionToken for any token that
// fails signature, expiry or claim-shape checks.  Callers do not need
// to distinguish the cases; all of them mean "log in again".
var ErrInvalidToken = errors.New("invalid token")

// NewSessionToken builds and signs an HS256 JWT for a user.  The token
// carries the full identity (sub, username, role, name) plus iat/exp,
// so no session state is kept server-side.  There is also no
// revocation list: logout merely clears the client cookie, and a token
// replayed before its expiry remains valid.
func NewSessionToken(secret string, u model.User, ttl time.Duration) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(ttl)
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"role":     u.Role,
		"name":     u.Name,
		"iat":      now.Unix(),
		"exp":      exp.Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// ParseSessionToken verifies the signature, algorithm and expiry of a
// session token and decodes the embedded identity.
func ParseSessionToken(secret, raw string) (Identity, error) {
	tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		// Reject tokens signed with anything other than HMAC so an
		// attacker cannot downgrade to "none" or an asymmetric scheme.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !tok.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	ident := Identity{
		ID:       claimString(claims, "sub"),
		Username: claimString(claims, "username"),
		Role:     claimString(claims, "role"),
		Name:     claimString(claims, "name"),
	}
	if ident.ID == "" || ident.Role == "" {
		return Identity{}, ErrInvalidToken
	}
	return ident, nil
}

func claimString(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
