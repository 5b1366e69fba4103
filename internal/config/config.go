package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/participando/liga-api/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv             string
	ServiceName        string
	HTTPAddr           string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	CORSAllowedOrigins []string
	LogLevel           logging.Level

	AdminUsername string
	AdminPassword string
	JWTSecret     string
	TokenTTL      time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("HTTP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_READ_TIMEOUT: %w", err)
	}
	if readTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_READ_TIMEOUT must be > 0")
	}

	writeTimeout, err := time.ParseDuration(getEnv("HTTP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_WRITE_TIMEOUT: %w", err)
	}
	if writeTimeout <= 0 {
		return Config{}, fmt.Errorf("HTTP_WRITE_TIMEOUT must be > 0")
	}

	tokenTTL, err := time.ParseDuration(getEnv("AUTH_TOKEN_TTL", "24h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse AUTH_TOKEN_TTL: %w", err)
	}
	if tokenTTL <= 0 {
		return Config{}, fmt.Errorf("AUTH_TOKEN_TTL must be > 0")
	}

	jwtSecret := strings.TrimSpace(getEnv("AUTH_JWT_SECRET", ""))
	if jwtSecret == "" {
		if appEnv == EnvProd {
			return Config{}, fmt.Errorf("AUTH_JWT_SECRET is required when APP_ENV=prod")
		}
		jwtSecret = "liga-dev-secret"
	}

	return Config{
		AppEnv:             appEnv,
		ServiceName:        getEnv("SERVICE_NAME", "liga-api"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		LogLevel:           parseLogLevel(getEnv("LOG_LEVEL", "info")),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin"),
		JWTSecret:          jwtSecret,
		TokenTTL:           tokenTTL,
	}, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && strings.TrimSpace(value) != "" {
		return value
	}
	return fallback
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
