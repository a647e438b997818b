// internal/services/auth.go
package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
	"careers-backend/internal/repository/postgres"
	"careers-backend/internal/security"
)

// AuthService issues bearer tokens for staff accounts.
type AuthService struct {
	users      UserStore
	jwt        *security.JWTProvider
	tokenTTL   time.Duration
	bcryptCost int
	logger     logger.Logger
}

func NewAuthService(users UserStore, jwt *security.JWTProvider, tokenTTL time.Duration, bcryptCost int, log logger.Logger) *AuthService {
	return &AuthService{users: users, jwt: jwt, tokenTTL: tokenTTL, bcryptCost: bcryptCost, logger: log}
}

func (s *AuthService) SignUp(ctx context.Context, payload models.SignUpPayload) (*models.AuthResponse, error) {
	name := strings.TrimSpace(payload.Name)
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	if name == "" || email == "" || len(payload.Password) < 8 {
		return nil, apperrors.NewBadRequestError("name, email and a password of at least 8 characters are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), s.bcryptCost)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	user, err := s.users.Create(ctx, name, email, string(hash), "staff")
	if err != nil {
		if errors.Is(err, postgres.ErrDuplicateEmail) {
			return nil, apperrors.NewEmailTakenError(email)
		}
		s.logger.Error("Failed to create user", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewDatabaseError(err)
	}

	s.logger.Info("User registered", map[string]interface{}{"user_id": user.ID})
	return s.issue(user)
}

func (s *AuthService) SignIn(ctx context.Context, payload models.SignInPayload) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewInvalidCredentialsError()
		}
		s.logger.Error("Failed to load user", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewDatabaseError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)) != nil {
		return nil, apperrors.NewInvalidCredentialsError()
	}

	s.logger.Info("User signed in", map[string]interface{}{"user_id": user.ID})
	return s.issue(user)
}

func (s *AuthService) issue(user *models.User) (*models.AuthResponse, error) {
	token, _, err := s.jwt.Generate(user.ID, user.Email, user.Role, s.tokenTTL)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}
	return &models.AuthResponse{
		Token: token,
		User: &models.AuthUser{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}
