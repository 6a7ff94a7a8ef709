package service

import (
	"testing"
	"time"

	"github.com/teamtrack/employee-system/internal/core/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	claims := domain.Claims{UserID: 42, Role: domain.RoleEmployee, EmployeeID: int64Ptr(7)}
	token, err := svc.Issue(claims)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got.UserID != 42 || got.Role != domain.RoleEmployee {
		t.Fatalf("claims changed in round trip: %+v", got)
	}
	if got.EmployeeID == nil || *got.EmployeeID != 7 {
		t.Fatalf("employee id changed in round trip: %v", got.EmployeeID)
	}
}

func TestTokenService_NilEmployeeID(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	token, err := svc.Issue(domain.Claims{UserID: 1, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	got, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if got.EmployeeID != nil {
		t.Fatalf("expected nil employee id, got %v", *got.EmployeeID)
	}
}

func TestTokenService_Expired(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)
	expired := &TokenService{secret: []byte("secret"), ttl: -time.Minute}

	token, err := expired.Issue(domain.Claims{UserID: 1, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret-a", time.Hour)
	verifier := NewTokenService("secret-b", time.Hour)

	token, err := issuer.Issue(domain.Claims{UserID: 1, Role: domain.RoleAdmin})
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestTokenService_DefaultTTL(t *testing.T) {
	svc := NewTokenService("secret", 0)
	if svc.ttl != defaultTokenTTL {
		t.Fatalf("expected default ttl %v, got %v", defaultTokenTTL, svc.ttl)
	}
}
