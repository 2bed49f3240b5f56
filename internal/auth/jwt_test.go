package auth

import (
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	_ = os.Setenv("JWT_SECRET", "inkpress_test_jwt_secret_key_1234567890")
	if err := InitJWTSecret(); err != nil {
		os.Exit(1)
	}
	os.Exit(m.Run())
}

func TestGenerateAndVerifyJWT(t *testing.T) {
	token, err := GenerateJWT(7, "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	userID, err := VerifyJWT(token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user id 7, got %d", userID)
	}
}

func TestVerifyJWTRejectsGarbage(t *testing.T) {
	if _, err := VerifyJWT("not-a-token"); err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(7, "alice@example.com")
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	previous := jwtSecret
	jwtSecret = "a_completely_different_secret_value"
	defer func() { jwtSecret = previous }()

	if _, err := VerifyJWT(token); err == nil {
		t.Fatalf("expected verification to fail with a different secret")
	}
}
