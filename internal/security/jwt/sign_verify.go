// Package jwtutil signs the session cookie. The token only names a server-side
// session; it grants nothing on its own.
package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type SessionClaims struct {
	jwt.RegisteredClaims
}

type Signer struct {
	secret    []byte
	clockSkew time.Duration
}

func NewSigner(secret []byte, clockSkew time.Duration) *Signer {
	return &Signer{secret: secret, clockSkew: clockSkew}
}

// Sign returns an HS256 token whose jti is the session id.
func (s *Signer) Sign(subject, sessionID string, issuedAt, expiresAt time.Time) (string, error) {
	claims := SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies signature, algorithm and expiry.
func (s *Signer) Parse(tokenStr string) (*SessionClaims, error) {
	parser := jwt.NewParser(
		jwt.WithLeeway(s.clockSkew),
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithExpirationRequired(),
	)
	token, err := parser.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid || claims.ID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
