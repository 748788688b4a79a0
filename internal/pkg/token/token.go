// Package token issues and verifies the JWTs used by the HTTP boundary.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/light-bringer/checkout-service/internal/pkg/clock"
)

// ErrInvalidToken is returned for missing, malformed, expired, or
// wrongly-signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the authenticated identity through a request.
type Claims struct {
	UserID string `json:"id"`
	Name   string `json:"username"`
	Admin  bool   `json:"admin"`
	jwt.RegisteredClaims
}

// Manager signs and verifies HS256 tokens with a shared secret.
type Manager struct {
	secret []byte
	ttl    time.Duration
	clock  clock.Clock
}

// NewManager creates a Manager. ttl is the token lifetime.
func NewManager(secret []byte, ttl time.Duration, clk clock.Clock) *Manager {
	return &Manager{secret: secret, ttl: ttl, clock: clk}
}

// Issue creates a signed token for the given user.
func (m *Manager) Issue(userID, name string, admin bool) (string, error) {
	now := m.clock.Now()
	claims := &Claims{
		UserID: userID,
		Name:   name,
		Admin:  admin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string, returning its claims.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.clock.Now))
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
