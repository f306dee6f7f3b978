package security

import (
	"testing"
	"time"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := CreateTokenManager("test-secret-key-32-bytes-long!!", "orgmatch-test")

	token, err := manager.Generate(42, 24*time.Hour)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Fatal("Generate() returned empty token")
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.OrgID != 42 {
		t.Errorf("OrgID = %d, want 42", claims.OrgID)
	}
}

func TestTokenManager_ValidateErrors(t *testing.T) {
	manager := CreateTokenManager("test-secret-key-32-bytes-long!!", "orgmatch-test")

	t.Run("Expired token", func(t *testing.T) {
		token, err := manager.Generate(7, -time.Minute)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := manager.Validate(token); err == nil {
			t.Error("Validate() accepted expired token")
		}
	})

	t.Run("Wrong secret", func(t *testing.T) {
		other := CreateTokenManager("a-completely-different-secret!!!", "orgmatch-test")
		token, err := other.Generate(7, time.Hour)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := manager.Validate(token); err == nil {
			t.Error("Validate() accepted token signed with a different secret")
		}
	})

	t.Run("Wrong issuer", func(t *testing.T) {
		other := CreateTokenManager("test-secret-key-32-bytes-long!!", "someone-else")
		token, err := other.Generate(7, time.Hour)
		if err != nil {
			t.Fatalf("Generate() error = %v", err)
		}
		if _, err := manager.Validate(token); err == nil {
			t.Error("Validate() accepted token from a different issuer")
		}
	})

	t.Run("Garbage token", func(t *testing.T) {
		if _, err := manager.Validate("not.a.token"); err == nil {
			t.Error("Validate() accepted malformed token")
		}
	})
}
