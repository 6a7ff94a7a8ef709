package ports

import "github.com/teamtrack/employee-system/internal/core/domain"

// TokenService issues and verifies signed, time-boxed access tokens.
// Tokens are stateless: expiry is the only invalidation mechanism.
type TokenService interface {
	// Issue signs a token embedding the claims with a fixed lifetime.
	Issue(claims domain.Claims) (string, error)

	// Verify returns the embedded claims, or domain.ErrInvalidToken when the
	// signature does not match, the token is malformed, or it has expired.
	Verify(token string) (*domain.Claims, error)
}
