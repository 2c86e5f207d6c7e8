package auth

import (
	"testing"
	"time"
)

func TestIssueParseRoundTrip(t *testing.T) {
	sess, err := Issue("admin@board.test", "trainingboard", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if sess.Token == "" {
		t.Fatalf("expected non-empty token")
	}

	claims, err := Parse(sess.Token, "secret", "trainingboard")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.Email != "admin@board.test" {
		t.Fatalf("expected email claim, got %s", claims.Email)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	sess, err := Issue("admin@board.test", "trainingboard", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := Parse(sess.Token, "other-secret", "trainingboard"); err == nil {
		t.Fatalf("expected error for wrong key")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	sess, err := Issue("admin@board.test", "someone-else", "secret", time.Hour)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := Parse(sess.Token, "secret", "trainingboard"); err == nil {
		t.Fatalf("expected issuer mismatch error")
	}
}

func TestParseRejectsExpired(t *testing.T) {
	sess, err := Issue("admin@board.test", "trainingboard", "secret", -time.Minute)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if _, err := Parse(sess.Token, "secret", "trainingboard"); err == nil {
		t.Fatalf("expected expiry error")
	}
}
