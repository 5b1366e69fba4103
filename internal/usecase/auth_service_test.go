package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestAuthService(ttl time.Duration) *AuthService {
	return NewAuthService("admin", "admin", "test-secret", ttl, nil)
}

func TestAuthService_LoginAndVerify(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(time.Hour)

	session, err := service.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if session.AccessToken == "" {
		t.Fatal("expected a signed token")
	}
	if session.Principal.Username != "admin" {
		t.Fatalf("unexpected principal: %+v", session.Principal)
	}

	principal, err := service.VerifyAccessToken(context.Background(), session.AccessToken)
	if err != nil {
		t.Fatalf("VerifyAccessToken error: %v", err)
	}
	if principal.UserID != "admin" || principal.Username != "admin" {
		t.Fatalf("unexpected principal from token: %+v", principal)
	}
}

func TestAuthService_LoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(time.Hour)

	for _, tc := range []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "admin"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := service.Login(context.Background(), tc.username, tc.password)
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestAuthService_LoginRequiresCredentials(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(time.Hour)

	if _, err := service.Login(context.Background(), "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_VerifyRejectsExpiredToken(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(time.Hour)
	service.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	session, err := service.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	service.now = time.Now
	if _, err := service.VerifyAccessToken(context.Background(), session.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired token, got %v", err)
	}
}

func TestAuthService_VerifyRejectsGarbage(t *testing.T) {
	t.Parallel()

	service := newTestAuthService(time.Hour)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := service.VerifyAccessToken(context.Background(), token); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized for %q, got %v", token, err)
		}
	}
}

func TestAuthService_VerifyRejectsTokenFromOtherSecret(t *testing.T) {
	t.Parallel()

	issuer := NewAuthService("admin", "admin", "other-secret", time.Hour, nil)
	session, err := issuer.Login(context.Background(), "admin", "admin")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	verifier := newTestAuthService(time.Hour)
	if _, err := verifier.VerifyAccessToken(context.Background(), session.AccessToken); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for foreign token, got %v", err)
	}
}
