package middleware

import (
	"errors"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hotelhub/hotel-admin/internal/api/metrics"
	"github.com/hotelhub/hotel-admin/internal/core/domain"
)

const identityKey = "identity"

// TokenVerifier turns a bearer token into the identity it was issued for.
type TokenVerifier interface {
	Verify(raw string) (domain.Identity, error)
}

// ResolveIdentity attaches the caller's identity to the context when the
// request carries a bearer token. Requests without a token pass through as
// anonymous; a token that is present but invalid ends the request with 401.
func ResolveIdentity(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw, ok, err := bearerToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("malformed").Inc()
				return err
			}
			if !ok {
				return next(c)
			}

			id, err := verifier.Verify(raw)
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
				return err
			}

			SetIdentity(c, &id)
			return next(c)
		}
	}
}

// SetIdentity attaches id to the request context.
func SetIdentity(c echo.Context, id *domain.Identity) {
	c.Set(identityKey, id)
}

// IdentityFrom returns the identity resolved for this request, or nil.
func IdentityFrom(c echo.Context) *domain.Identity {
	id, _ := c.Get(identityKey).(*domain.Identity)
	return id
}

// bearerToken extracts the token from an Authorization header. Only an empty
// header means no token; a scheme without a token, or any scheme other than
// Bearer, is malformed.
func bearerToken(header string) (string, bool, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false, nil
	}

	parts := strings.SplitN(header, " ", 2)
	if !strings.EqualFold(parts[0], "bearer") {
		return "", false, domain.ErrMalformedToken
	}
	if len(parts) == 1 {
		return "", false, domain.ErrMalformedToken
	}

	raw := strings.TrimSpace(parts[1])
	if raw == "" {
		return "", false, domain.ErrMalformedToken
	}
	return raw, true, nil
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrExpiredToken):
		return "expired"
	case errors.Is(err, domain.ErrConfiguration):
		return "misconfigured"
	default:
		return "malformed"
	}
}
