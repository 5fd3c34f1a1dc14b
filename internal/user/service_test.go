package user

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"nutrisync/internal/database"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewService(NewRepository(db.SQL), "test-secret")
}

func TestService(t *testing.T) {
	ctx := context.Background()

	t.Run("RegisterLoginRoundTrip", func(t *testing.T) {
		svc := newTestService(t)

		token, err := svc.Register(ctx, "alice@example.com", "s3cret", "Alice")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if token == "" {
			t.Fatal("Register returned empty token")
		}

		loginToken, err := svc.Login(ctx, "alice@example.com", "s3cret")
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}

		id, err := svc.ParseToken(loginToken)
		if err != nil {
			t.Fatalf("ParseToken failed: %v", err)
		}
		u, err := svc.GetByID(ctx, id)
		if err != nil {
			t.Fatalf("GetByID failed: %v", err)
		}
		if u.Email != "alice@example.com" || u.Name != "Alice" {
			t.Errorf("Unexpected user %+v", u)
		}
	})

	t.Run("EmailNormalized", func(t *testing.T) {
		svc := newTestService(t)
		if _, err := svc.Register(ctx, "  Bob@Example.COM ", "pw", "Bob"); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := svc.Login(ctx, "bob@example.com", "pw"); err != nil {
			t.Errorf("Login with normalized email failed: %v", err)
		}
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		svc := newTestService(t)
		if _, err := svc.Register(ctx, "carol@example.com", "pw", ""); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := svc.Register(ctx, "carol@example.com", "other", ""); !errors.Is(err, ErrEmailTaken) {
			t.Errorf("Expected ErrEmailTaken, got %v", err)
		}
	})

	t.Run("WrongPassword", func(t *testing.T) {
		svc := newTestService(t)
		if _, err := svc.Register(ctx, "dave@example.com", "right", ""); err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		if _, err := svc.Login(ctx, "dave@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		svc := newTestService(t)
		if _, err := svc.Login(ctx, "nobody@example.com", "pw"); !errors.Is(err, ErrInvalidCredentials) {
			t.Errorf("Expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("RejectsTamperedToken", func(t *testing.T) {
		svc := newTestService(t)
		token, err := svc.Register(ctx, "eve@example.com", "pw", "")
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		other := NewService(nil, "different-secret")
		if _, err := other.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Expected ErrInvalidToken, got %v", err)
		}
	})
}
