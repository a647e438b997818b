// internal/services/auth_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
	"careers-backend/internal/repository/postgres"
	"careers-backend/internal/security"
)

func newAuthService(t *testing.T, users UserStore) *AuthService {
	return NewAuthService(users, security.NewJWTProvider("test-secret"), time.Hour, bcrypt.MinCost, logger.NewTestLogger(t))
}

func TestAuthService_SignUp(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(t, users)

	resp, err := svc.SignUp(context.Background(), models.SignUpPayload{
		Name:     "Robin Park",
		Email:    "Robin@Example.com",
		Password: "long-enough-password",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "robin@example.com", resp.User.Email)

	stored := users.users["robin@example.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("long-enough-password")))
}

func TestAuthService_SignUp_Rejections(t *testing.T) {
	svc := newAuthService(t, newFakeUserStore())

	tests := []struct {
		name    string
		payload models.SignUpPayload
	}{
		{name: "missing name", payload: models.SignUpPayload{Email: "a@b.com", Password: "long-enough-pw"}},
		{name: "missing email", payload: models.SignUpPayload{Name: "A", Password: "long-enough-pw"}},
		{name: "short password", payload: models.SignUpPayload{Name: "A", Email: "a@b.com", Password: "short"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SignUp(context.Background(), tt.payload)
			assert.True(t, apperrors.Is(err, apperrors.ErrCodeBadRequest))
		})
	}
}

func TestAuthService_SignUp_DuplicateEmail(t *testing.T) {
	users := newFakeUserStore()
	users.createErr = postgres.ErrDuplicateEmail
	svc := newAuthService(t, users)

	_, err := svc.SignUp(context.Background(), models.SignUpPayload{
		Name:     "Robin Park",
		Email:    "robin@example.com",
		Password: "long-enough-password",
	})

	assert.True(t, apperrors.Is(err, apperrors.ErrCodeEmailTaken))
}

func TestAuthService_SignIn(t *testing.T) {
	users := newFakeUserStore()
	svc := newAuthService(t, users)

	_, err := svc.SignUp(context.Background(), models.SignUpPayload{
		Name:     "Robin Park",
		Email:    "robin@example.com",
		Password: "long-enough-password",
	})
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.SignIn(context.Background(), models.SignInPayload{
			Email:    "robin@example.com",
			Password: "long-enough-password",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)

		claims, err := security.NewJWTProvider("test-secret").Parse(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, "robin@example.com", claims.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), models.SignInPayload{
			Email:    "robin@example.com",
			Password: "not-the-password",
		})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidCredentials))
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.SignIn(context.Background(), models.SignInPayload{
			Email:    "ghost@example.com",
			Password: "long-enough-password",
		})
		assert.True(t, apperrors.Is(err, apperrors.ErrCodeInvalidCredentials))
	})
}
