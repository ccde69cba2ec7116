package utils

import (
	"testing"
)

func TestGenerateAndValidateToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateToken("mgr-1", "laura@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken failed: %v", err)
	}
	if claims.ManagerID != "mgr-1" {
		t.Errorf("ManagerID = %q, want mgr-1", claims.ManagerID)
	}
	if claims.Email != "laura@example.com" {
		t.Errorf("Email = %q", claims.Email)
	}
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("mgr-1", "laura@example.com")
	if err != nil {
		t.Fatalf("GenerateToken failed: %v", err)
	}

	if _, err := ValidateToken(token + "x"); err == nil {
		t.Error("tampered token accepted")
	}

	t.Setenv("JWT_SECRET", "different-secret")
	if _, err := ValidateToken(token); err == nil {
		t.Error("token signed with another secret accepted")
	}
}
