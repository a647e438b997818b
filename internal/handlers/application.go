// internal/handlers/application.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
	"careers-backend/internal/services"
)

// idempotencyHeader carries the client-generated submission key.
const idempotencyHeader = "Idempotency-Key"

// ApplicationHandler exposes the intake and review endpoints.
type ApplicationHandler struct {
	service *services.ApplicationService
	logger  logger.Logger
}

func NewApplicationHandler(service *services.ApplicationService, log logger.Logger) *ApplicationHandler {
	return &ApplicationHandler{service: service, logger: log}
}

// Submit handles POST /api/careers/submitapplication.
func (h *ApplicationHandler) Submit(c *gin.Context) {
	var payload models.ApplicationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	app, replayed, err := h.service.Submit(c.Request.Context(), payload, c.GetHeader(idempotencyHeader))
	if err != nil {
		respondError(c, err)
		return
	}
	if replayed {
		c.JSON(http.StatusOK, app)
		return
	}
	c.JSON(http.StatusCreated, app)
}

// List handles GET /api/careers/Applicationlists.
func (h *ApplicationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	list, err := h.service.List(c.Request.Context(), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get handles GET /api/careers/application/:id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	app, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/careers/application/:id/status.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req statusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), c.Param("id"), models.ApplicationStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, app)
}
