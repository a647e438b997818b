// internal/handlers/storage.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/services"
)

// resumeFormField is the multipart field name clients upload under.
const resumeFormField = "resume"

// StorageHandler exposes the resume upload and retrieval endpoints.
type StorageHandler struct {
	service *services.StorageService
	logger  logger.Logger
}

func NewStorageHandler(service *services.StorageService, log logger.Logger) *StorageHandler {
	return &StorageHandler{service: service, logger: log}
}

// Upload handles POST /api/storage/upload-resume.
func (h *StorageHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile(resumeFormField)
	if err != nil {
		// Older clients upload under "file".
		fileHeader, err = c.FormFile("file")
	}
	if err != nil {
		respondError(c, apperrors.NewBadRequestError("multipart field 'resume' is required"))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respondError(c, apperrors.NewUploadFailedError(err))
		return
	}
	defer f.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	stored, err := h.service.Upload(c.Request.Context(), fileHeader.Filename, contentType, fileHeader.Size, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, stored)
}

// ResolveURL handles GET /api/storage/file-url/:fileId.
func (h *StorageHandler) ResolveURL(c *gin.Context) {
	url, err := h.service.ResolveURL(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// Download handles GET /api/storage/files/:fileId.
func (h *StorageHandler) Download(c *gin.Context) {
	stored, err := h.service.Open(c.Request.Context(), c.Param("fileId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Type", stored.ContentType)
	c.FileAttachment(stored.Path, stored.Name)
}
