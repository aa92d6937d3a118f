package identity

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/pedidoflow/backend/internal/domain/shared"
	"github.com/pedidoflow/backend/internal/infrastructure/auth"
	"github.com/pedidoflow/backend/internal/infrastructure/config"
)

func newAuthService(t *testing.T, credentials config.AuthConfig) *AuthService {
	t.Helper()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-test-secret-test-secret",
		Expiration: 2 * time.Hour,
		Issuer:     "pedidoflow-test",
	})
	return NewAuthService(credentials, jwtService, zap.NewNop())
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t, config.AuthConfig{Username: "admin", Password: "secret"})

	t.Run("valid credentials issue a token", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Username: "admin", Password: "secret"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.WithinDuration(t, time.Now().Add(2*time.Hour), result.ExpiresAt, 5*time.Second)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "admin", Password: "wrong"})
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("wrong username", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "root", Password: "secret"})
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("failures are indistinguishable", func(t *testing.T) {
		_, errUser := svc.Login(ctx, LoginInput{Username: "root", Password: "secret"})
		_, errPass := svc.Login(ctx, LoginInput{Username: "admin", Password: "wrong"})
		assert.Equal(t, errUser, errPass)
	})
}

func TestLoginWithPasswordHash(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := newAuthService(t, config.AuthConfig{
		Username:     "admin",
		PasswordHash: string(hash),
	})

	t.Run("hash match", func(t *testing.T) {
		result, err := svc.Login(ctx, LoginInput{Username: "admin", Password: "s3cret"})
		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("hash mismatch", func(t *testing.T) {
		_, err := svc.Login(ctx, LoginInput{Username: "admin", Password: "secret"})
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("hash takes precedence over plaintext", func(t *testing.T) {
		both := newAuthService(t, config.AuthConfig{
			Username:     "admin",
			Password:     "plaintext",
			PasswordHash: string(hash),
		})
		_, err := both.Login(ctx, LoginInput{Username: "admin", Password: "plaintext"})
		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})
}
