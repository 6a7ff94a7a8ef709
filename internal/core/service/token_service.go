package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

const defaultTokenTTL = time.Hour

// TokenService signs and verifies HS256 access tokens. The signing secret is
// process-wide configuration; tokens expire after a fixed lifetime and there
// is no refresh mechanism — expired tokens require a fresh login.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

type tokenClaims struct {
	UserID     int64  `json:"userId"`
	Role       string `json:"role"`
	EmployeeID *int64 `json:"employeeId,omitempty"`
	jwt.RegisteredClaims
}

// Issue produces a signed token embedding the claims with expiry set to
// issue-time plus the configured lifetime.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	tc := tokenClaims{
		UserID:     claims.UserID,
		Role:       claims.Role,
		EmployeeID: claims.EmployeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, tc)
	return t.SignedString(s.secret)
}

// Verify returns the embedded claims unchanged, or domain.ErrInvalidToken
// when the signature does not match, the structure is malformed, or the
// expiry has passed.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	var tc tokenClaims
	parsed, err := jwt.ParseWithClaims(token, &tc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}

	return &domain.Claims{
		UserID:     tc.UserID,
		Role:       tc.Role,
		EmployeeID: tc.EmployeeID,
	}, nil
}
