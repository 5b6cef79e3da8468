package middleware

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"
)

const (
	tokenIssuer = "todolists"
	keyInfo     = "todolists session cookie v1"
)

var ErrInvalidToken = errors.New("invalid session token")

// TokenCodec signs session ids into cookie values so clients cannot forge
// or enumerate another browser's session.
type TokenCodec struct {
	key []byte
	ttl time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{key: deriveKey(secret), ttl: ttl}
}

// deriveKey expands the configured secret into a full-length HS256 key so
// short operator secrets still sign with 256 bits.
func deriveKey(secret string) []byte {
	key := make([]byte, sha256.Size)
	// HKDF-SHA256 yields up to 8160 bytes; a 32-byte read cannot fail.
	_, _ = io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(keyInfo)), key)
	return key
}

// Issue returns a signed token for sessionID valid for the codec's TTL.
func (c *TokenCodec) Issue(sessionID string, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   sessionID,
		Issuer:    tokenIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns the session id it carries.
func (c *TokenCodec) Parse(token string, now time.Time) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims,
		func(*jwt.Token) (any, error) { return c.key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", fmt.Errorf("%w: subject is not a session id", ErrInvalidToken)
	}
	return claims.Subject, nil
}
