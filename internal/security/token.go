package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// fallbackTTL applies when a caller mints without an explicit ttl.
// The login flow always passes the configured lifetime; this shorter
// default only covers direct internal callers.
const fallbackTTL = 15 * time.Minute

// TokenCodec mints and decodes signed bearer tokens carrying a subject
// and an absolute expiry. The secret and algorithm are fixed at process
// start and never negotiated per request.
type TokenCodec struct {
	secret []byte
	method jwt.SigningMethod
}

func NewTokenCodec(secret []byte, algorithm string) (*TokenCodec, error) {
	m := jwt.GetSigningMethod(algorithm)
	if m == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := m.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("algorithm %q is not symmetric", algorithm)
	}
	return &TokenCodec{secret: secret, method: m}, nil
}

func (c *TokenCodec) Mint(subject string, ttl time.Duration) (string, error) {
	if ttl == 0 {
		ttl = fallbackTTL
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
}

// Decode verifies the signature and expiry before trusting any claim.
// No leeway is applied: a token is expired the instant now >= exp.
func (c *TokenCodec) Decode(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{c.method.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid || claims.Subject == "" {
		return "", jwt.ErrTokenInvalidClaims
	}
	return claims.Subject, nil
}
