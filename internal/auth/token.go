package auth

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec mints a bearer token for a user and resolves one back to the
// owning email.
type TokenCodec interface {
	Issue(u User) (string, error)
	Resolve(token string) (string, error)
}

const legacyPrefix = "token-"

// LegacyCodec emits "token-<email>": non-cryptographic, non-expiring and
// non-revocable. Anyone who knows an email can forge a session. This is the
// original platform's contract, kept as the default for parity; select
// TOKEN_MODE=jwt to replace it behind the same interface.
type LegacyCodec struct{}

func (LegacyCodec) Issue(u User) (string, error) {
	return legacyPrefix + u.Email, nil
}

func (LegacyCodec) Resolve(token string) (string, error) {
	if !strings.HasPrefix(token, legacyPrefix) {
		return "", ErrInvalidToken
	}
	return strings.TrimPrefix(token, legacyPrefix), nil
}

// JWTCodec signs expiring HS256 tokens carrying the email as subject.
type JWTCodec struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

func NewJWTCodec(secret string, ttl time.Duration) *JWTCodec {
	return &JWTCodec{
		secret: []byte(secret),
		issuer: "vinaurbana",
		ttl:    ttl,
	}
}

func (c *JWTCodec) Issue(u User) (string, error) {
	now := time.Now()

	claims := jwt.RegisteredClaims{
		Subject:   u.Email,
		Issuer:    c.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

func (c *JWTCodec) Resolve(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Issuer != "" && claims.Issuer != c.issuer {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}
