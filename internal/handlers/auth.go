// internal/handlers/auth.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
	"careers-backend/internal/services"
)

// AuthHandler exposes the staff sign-in and registration endpoints.
type AuthHandler struct {
	service *services.AuthService
	logger  logger.Logger
}

func NewAuthHandler(service *services.AuthService, log logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: log}
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var payload models.SignInPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	resp, err := h.service.SignIn(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(c *gin.Context) {
	var payload models.SignUpPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	resp, err := h.service.SignUp(c.Request.Context(), payload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}
