package identity

import (
	"context"
	"crypto/subtle"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedidoflow/backend/internal/domain/shared"
	"github.com/pedidoflow/backend/internal/infrastructure/auth"
	"github.com/pedidoflow/backend/internal/infrastructure/config"
)

// LoginInput contains the submitted credentials
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResult contains the issued token and its expiry
type LoginResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService authenticates against the single configured credential
// pair and issues bearer tokens. Every failure mode yields the same
// INVALID_CREDENTIALS error so callers cannot probe which part of the
// credential was wrong.
type AuthService struct {
	credentials config.AuthConfig
	jwtService  *auth.JWTService
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(credentials config.AuthConfig, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		credentials: credentials,
		jwtService:  jwtService,
		logger:      logger,
	}
}

// Login verifies the submitted credentials and returns a signed token
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("username", input.Username))

	usernameOK := subtle.ConstantTimeCompare([]byte(input.Username), []byte(s.credentials.Username)) == 1
	passwordOK := s.verifyPassword(input.Password)

	if !usernameOK || !passwordOK {
		s.logger.Warn("Login rejected", zap.String("username", input.Username))
		return nil, shared.ErrInvalidCredentials
	}

	token, expiresAt, err := s.jwtService.GenerateToken(s.credentials.Username)
	if err != nil {
		s.logger.Error("Failed to sign token", zap.Error(err))
		return nil, err
	}

	return &LoginResult{Token: token, ExpiresAt: expiresAt}, nil
}

func (s *AuthService) verifyPassword(submitted string) bool {
	if s.credentials.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.credentials.PasswordHash), []byte(submitted)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(submitted), []byte(s.credentials.Password)) == 1
}
