package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestNewSessionManagerFromEnvRequiresPassword(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "")
	t.Setenv("SESSION_SECRET", "secret-for-test")

	manager, err := NewSessionManagerFromEnv()
	if err == nil {
		t.Fatalf("expected error when ADMIN_PASSWORD is empty")
	}
	if manager != nil {
		t.Fatalf("expected nil manager when env is invalid")
	}
}

func TestNewSessionManagerFromEnvRequiresSecret(t *testing.T) {
	t.Setenv("ADMIN_PASSWORD", "hunter2")
	t.Setenv("SESSION_SECRET", "")

	if _, err := NewSessionManagerFromEnv(); err == nil {
		t.Fatalf("expected error when SESSION_SECRET is empty")
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	manager := NewSessionManager("hunter2", "secret-for-test")

	token, err := manager.Login("wrong")
	if err != ErrInvalidPassword {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token on failed login, got %q", token)
	}
}

func TestLoginAndVerifyRoundTrip(t *testing.T) {
	manager := NewSessionManager("hunter2", "secret-for-test")

	token, err := manager.Login("hunter2")
	if err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}

	role, err := manager.Verify(token)
	if err != nil {
		t.Fatalf("unexpected verify error: %v", err)
	}
	if role != RoleAdmin {
		t.Fatalf("expected role %q, got %q", RoleAdmin, role)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	manager := NewSessionManager("hunter2", "secret-for-test")

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  RoleAdmin,
		"role": RoleAdmin,
		"iss":  "inkwell",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	tokenString, err := forged.SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("failed to sign forged token: %v", err)
	}

	if _, err := manager.Verify(tokenString); err == nil {
		t.Fatalf("expected verify error for foreign signature")
	}
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	manager := NewSessionManager("hunter2", "secret-for-test")

	if _, err := manager.Verify("not-a-token"); err == nil {
		t.Fatalf("expected verify error for garbage token")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	manager := NewSessionManager("hunter2", "secret-for-test")

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  RoleAdmin,
		"role": RoleAdmin,
		"iss":  "inkwell",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})
	tokenString, err := expired.SignedString([]byte("secret-for-test"))
	if err != nil {
		t.Fatalf("failed to sign expired token: %v", err)
	}

	if _, err := manager.Verify(tokenString); err == nil {
		t.Fatalf("expected verify error for expired token")
	}
}
