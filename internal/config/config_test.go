package config

import (
	"testing"
	"time"

	"github.com/participando/liga-api/internal/platform/logging"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.AppEnv != EnvDev {
		t.Fatalf("AppEnv = %q, want %q", cfg.AppEnv, EnvDev)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("HTTPAddr = %q, want :8080", cfg.HTTPAddr)
	}
	if cfg.TokenTTL != 24*time.Hour {
		t.Fatalf("TokenTTL = %v, want 24h", cfg.TokenTTL)
	}
	if cfg.AdminUsername != "admin" || cfg.AdminPassword != "admin" {
		t.Fatalf("unexpected default admin credentials: %q/%q", cfg.AdminUsername, cfg.AdminPassword)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("LogLevel = %v, want info", cfg.LogLevel)
	}
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "sandbox")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid APP_ENV")
	}
}

func TestLoad_ProdRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when AUTH_JWT_SECRET is missing in prod")
	}
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unparseable HTTP_READ_TIMEOUT")
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]logging.Level{
		"debug":   logging.LevelDebug,
		"warning": logging.LevelWarn,
		"error":   logging.LevelError,
		"":        logging.LevelInfo,
		"bogus":   logging.LevelInfo,
	}
	for input, want := range cases {
		if got := parseLogLevel(input); got != want {
			t.Fatalf("parseLogLevel(%q) = %v, want %v", input, got, want)
		}
	}
}
