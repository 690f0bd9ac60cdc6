package token

import (
	"testing"
)

const secret = "test-secret"

func TestGeneratePair_RoundTrip(t *testing.T) {
	access, refresh, err := GeneratePair(42, "tech@example.com", secret)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if access == refresh {
		t.Fatalf("access and refresh tokens must differ")
	}

	ac, err := Parse(access, secret)
	if err != nil {
		t.Fatalf("Parse access: %v", err)
	}
	if ac.UserID != 42 || ac.Email != "tech@example.com" || ac.Kind != KindAccess {
		t.Errorf("unexpected access claims: %+v", ac)
	}
	if ac.ID == "" {
		t.Errorf("access token missing jti")
	}

	rc, err := Parse(refresh, secret)
	if err != nil {
		t.Fatalf("Parse refresh: %v", err)
	}
	if rc.UserID != 42 || rc.Kind != KindRefresh {
		t.Errorf("unexpected refresh claims: %+v", rc)
	}
}

func TestParse_WrongSecret(t *testing.T) {
	access, _, err := GeneratePair(1, "a@b.c", secret)
	if err != nil {
		t.Fatalf("GeneratePair: %v", err)
	}
	if _, err := Parse(access, "other-secret"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}
}

func TestParse_Garbage(t *testing.T) {
	if _, err := Parse("not.a.token", secret); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}
