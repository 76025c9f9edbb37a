// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"testing"
	"time"

	"github.com/maina2/pollpro/models"
)

const testSecret = "test-jwt-secret"

func TestIssueAndValidateToken(t *testing.T) {
	token, err := IssueToken("user-123", models.RoleUser, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	identity, err := ValidateToken(token, testSecret)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}

	if identity.UserID != "user-123" {
		t.Errorf("Expected user ID user-123, got %s", identity.UserID)
	}
	if identity.Role != models.RoleUser {
		t.Errorf("Expected role user, got %s", identity.Role)
	}
	if !identity.Authenticated {
		t.Error("Expected authenticated identity")
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := IssueToken("user-123", models.RoleAdmin, testSecret, time.Hour)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := ValidateToken(token, "other-secret"); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	token, err := IssueToken("user-123", models.RoleUser, testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("IssueToken failed: %v", err)
	}

	if _, err := ValidateToken(token, testSecret); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", testSecret); err != ErrInvalidToken {
		t.Errorf("Expected ErrInvalidToken, got %v", err)
	}
}

func TestPasswordRoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-password" {
		t.Error("Hash should not equal the plaintext password")
	}

	if err := CheckPassword(hash, "s3cret-password"); err != nil {
		t.Errorf("CheckPassword failed for correct password: %v", err)
	}
	if err := CheckPassword(hash, "wrong-password"); err != ErrInvalidCredentials {
		t.Errorf("Expected ErrInvalidCredentials, got %v", err)
	}
}

func TestNewIDUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		if id == "" {
			t.Fatal("NewID returned empty string")
		}
		if seen[id] {
			t.Fatalf("NewID returned duplicate: %s", id)
		}
		seen[id] = true
	}
}
