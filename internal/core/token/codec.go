// Package token signs and verifies the bearer tokens that carry a caller's
// identity between requests. Tokens are stateless HS256 JWTs with a fixed
// lifetime; there is no revocation.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

// TTL is the lifetime of every issued token.
const TTL = 14 * time.Hour

// Claims is the signed payload: {id, email, firstName, lastName, type, iat, exp}.
type Claims struct {
	UserID    string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Type      string `json:"type"`
	jwt.RegisteredClaims
}

// Codec issues and verifies tokens with a server-held secret.
type Codec struct {
	secret []byte
	now    func() time.Time
}

// Option customises a Codec.
type Option func(*Codec)

// WithClock replaces the wall clock used for iat/exp and for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(c *Codec) { c.now = now }
}

func NewCodec(secret string, opts ...Option) *Codec {
	c := &Codec{secret: []byte(secret), now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Issue signs a token for id that expires TTL after issuance.
func (c *Codec) Issue(id domain.Identity) (string, error) {
	if len(c.secret) == 0 {
		return "", domain.ErrMissingSecret
	}

	now := c.now()
	claims := Claims{
		UserID:    id.ID,
		Email:     id.Email,
		FirstName: id.FirstName,
		LastName:  id.LastName,
		Type:      id.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the identity the token carries.
// It fails with domain.ErrExpiredToken past expiry and domain.ErrMalformedToken
// for every other defect, including an unknown role claim.
func (c *Codec) Verify(raw string) (domain.Identity, error) {
	if len(c.secret) == 0 {
		return domain.Identity{}, domain.ErrMissingSecret
	}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)

	var claims Claims
	_, err := parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrExpiredToken
		}
		return domain.Identity{}, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
	}

	role, err := domain.ParseRole(claims.Type)
	if err != nil {
		return domain.Identity{}, fmt.Errorf("%w: unknown type claim %q", domain.ErrMalformedToken, claims.Type)
	}

	return domain.Identity{
		ID:        claims.UserID,
		Email:     claims.Email,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Role:      role,
	}, nil
}
