package auth

import (
	"testing"
	"time"
)

func TestSessionIssueAndVerify(t *testing.T) {
	sessions, err := NewSessions("unit-test-secret", time.Hour)
	if err != nil {
		t.Fatalf("new sessions: %v", err)
	}

	token, err := sessions.Issue(SessionClaims{AdminID: "admin-1", Email: "admin@mrgcar.test", Role: "admin"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	claims, err := sessions.Verify(token)
	if err != nil {
		t.Fatalf("verify token: %v", err)
	}
	if claims.AdminID != "admin-1" || claims.Email != "admin@mrgcar.test" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestSessionVerifyRejectsWrongSecret(t *testing.T) {
	issuer, _ := NewSessions("secret-a", time.Hour)
	verifier, _ := NewSessions("secret-b", time.Hour)

	token, err := issuer.Issue(SessionClaims{AdminID: "admin-1"})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	if _, err := verifier.Verify(token); err == nil {
		t.Fatal("token signed with other secret must not verify")
	}
}

func TestSessionVerifyRejectsGarbage(t *testing.T) {
	sessions, _ := NewSessions("unit-test-secret", time.Hour)
	if _, err := sessions.Verify("not.a.jwt"); err == nil {
		t.Fatal("garbage token must not verify")
	}
}

func TestNewSessionsRequiresSecret(t *testing.T) {
	if _, err := NewSessions("   ", time.Hour); err == nil {
		t.Fatal("expected error for empty secret")
	}
}
