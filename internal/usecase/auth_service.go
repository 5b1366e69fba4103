package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/participando/liga-api/internal/domain/user"
	"github.com/participando/liga-api/internal/platform/logging"
)

// AuthService issues and verifies admin access tokens. There is a single
// fixed admin account; credentials come from configuration.
type AuthService struct {
	adminUsername string
	adminPassword string
	secret        []byte
	tokenTTL      time.Duration
	now           func() time.Time
	logger        *logging.Logger
}

func NewAuthService(adminUsername, adminPassword, secret string, tokenTTL time.Duration, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &AuthService{
		adminUsername: adminUsername,
		adminPassword: adminPassword,
		secret:        []byte(secret),
		tokenTTL:      tokenTTL,
		now:           time.Now,
		logger:        logger,
	}
}

// Session is a successful login: the signed token plus its expiry.
type Session struct {
	AccessToken string
	ExpiresAt   time.Time
	Principal   user.Principal
}

func (s *AuthService) Login(ctx context.Context, username, password string) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return Session{}, fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUsername)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.adminPassword)) == 1
	if !userOK || !passOK {
		s.logger.WarnContext(ctx, "login rejected", "username", username)
		return Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      "admin",
		"username": s.adminUsername,
		"iat":      s.now().Unix(),
		"exp":      expiresAt.Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return Session{}, fmt.Errorf("sign access token: %w", err)
	}

	s.logger.InfoContext(ctx, "login accepted", "username", username)

	return Session{
		AccessToken: signed,
		ExpiresAt:   expiresAt,
		Principal:   user.Principal{UserID: "admin", Username: s.adminUsername},
	}, nil
}

// VerifyAccessToken validates signature and expiry and returns the principal
// the token was issued to.
func (s *AuthService) VerifyAccessToken(ctx context.Context, tokenString string) (user.Principal, error) {
	_, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyAccessToken")
	defer span.End()

	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return user.Principal{}, fmt.Errorf("%w: access token is required", ErrUnauthorized)
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return user.Principal{}, fmt.Errorf("%w: invalid access token", ErrUnauthorized)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return user.Principal{}, fmt.Errorf("%w: invalid access token claims", ErrUnauthorized)
	}

	sub, _ := claims["sub"].(string)
	username, _ := claims["username"].(string)
	if sub == "" {
		return user.Principal{}, fmt.Errorf("%w: access token missing subject", ErrUnauthorized)
	}

	return user.Principal{UserID: sub, Username: username}, nil
}
