// internal/handlers/jobpost.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
	"careers-backend/internal/services"
)

// JobPostHandler exposes the job posting CRUD endpoints.
type JobPostHandler struct {
	service *services.JobPostService
	logger  logger.Logger
}

func NewJobPostHandler(service *services.JobPostService, log logger.Logger) *JobPostHandler {
	return &JobPostHandler{service: service, logger: log}
}

// List handles GET /api/jobpost/getposts.
func (h *JobPostHandler) List(c *gin.Context) {
	jobs, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// Get handles GET /api/jobpost/getpostid/:id.
func (h *JobPostHandler) Get(c *gin.Context) {
	job, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create handles POST /api/jobpost/createpost.
func (h *JobPostHandler) Create(c *gin.Context) {
	var form models.JobFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	job, err := h.service.Create(c.Request.Context(), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Update handles PUT /api/jobpost/updatepost/:id.
func (h *JobPostHandler) Update(c *gin.Context) {
	var form models.JobFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		respondError(c, apperrors.NewBadRequestError(err.Error()))
		return
	}

	job, err := h.service.Update(c.Request.Context(), c.Param("id"), form)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

// Delete handles DELETE /api/jobpost/deletepost/:id.
func (h *JobPostHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
