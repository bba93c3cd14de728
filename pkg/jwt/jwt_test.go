package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)
	accountID := uuid.New()

	token, err := manager.GenerateAccessToken(accountID, "manager@test.local", "manager")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}
	if claims.AccountID != accountID {
		t.Errorf("account = %s, want %s", claims.AccountID, accountID)
	}
	if claims.Role != "manager" {
		t.Errorf("role = %q, want manager", claims.Role)
	}
}

func TestValidateAccessToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a", time.Hour).GenerateAccessToken(uuid.New(), "x@test.local", "manager")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).ValidateAccessToken(token); err == nil {
		t.Error("expected validation to fail with the wrong secret")
	}
}

func TestValidateAccessToken_Expired(t *testing.T) {
	manager := NewManager("test-secret", -time.Minute)
	token, err := manager.GenerateAccessToken(uuid.New(), "x@test.local", "manager")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}
