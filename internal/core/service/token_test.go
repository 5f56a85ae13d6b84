package service

import (
	"testing"
	"time"

	"github.com/companycatalog/catalog-api/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	s := NewTokenService("secret", 2*time.Hour)

	token, err := s.Issue("id_1", domain.RoleUser, "alice", domain.VariantUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.ID != "id_1" {
		t.Fatalf("unexpected id: %s", claims.ID)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.NaturalKey != "alice" {
		t.Fatalf("unexpected natural key: %s", claims.NaturalKey)
	}
}

func TestTokenService_CompanyVariantClaim(t *testing.T) {
	s := NewTokenService("secret", 2*time.Hour)

	token, err := s.Issue("id_2", domain.RoleCompany, "Acme Corp", domain.VariantCompany)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims, err := s.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if claims.NaturalKey != "Acme Corp" {
		t.Fatalf("unexpected natural key: %s", claims.NaturalKey)
	}
	if claims.Role != domain.RoleCompany {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	s := NewTokenService("secret", 2*time.Hour)
	s.now = func() time.Time { return issuedAt }

	token, err := s.Issue("id_1", domain.RoleUser, "alice", domain.VariantUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Inside the window the token verifies.
	s.now = func() time.Time { return issuedAt.Add(119 * time.Minute) }
	if _, err := s.Verify(token); err != nil {
		t.Fatalf("token should still be valid: %v", err)
	}

	// After the 2-hour window it must fail with ErrTokenExpired.
	s.now = func() time.Time { return issuedAt.Add(121 * time.Minute) }
	if _, err := s.Verify(token); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	issuer := NewTokenService("secret", 2*time.Hour)
	verifier := NewTokenService("other-secret", 2*time.Hour)

	token, err := issuer.Issue("id_1", domain.RoleUser, "alice", domain.VariantUser)
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := verifier.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	s := NewTokenService("secret", 2*time.Hour)

	if _, err := s.Verify("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_NoSigningSecret(t *testing.T) {
	s := NewTokenService("", 2*time.Hour)

	if _, err := s.Issue("id_1", domain.RoleUser, "alice", domain.VariantUser); err != domain.ErrNoSigningSecret {
		t.Fatalf("expected ErrNoSigningSecret, got %v", err)
	}
	if _, err := s.Verify("whatever"); err != domain.ErrNoSigningSecret {
		t.Fatalf("expected ErrNoSigningSecret, got %v", err)
	}
}
