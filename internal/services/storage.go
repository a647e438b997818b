// internal/services/storage.go
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"careers-backend/internal/common/config"
	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/common/metrics"
	"careers-backend/internal/models"
)

// StorageService stores resume files on local disk and keeps their
// metadata in the database. Uploads hand back an opaque file id; the
// public URL is resolved in a second call.
type StorageService struct {
	files  FileStore
	cfg    config.StorageConfig
	logger logger.Logger
}

func NewStorageService(files FileStore, cfg config.StorageConfig, log logger.Logger) *StorageService {
	return &StorageService{files: files, cfg: cfg, logger: log}
}

// Upload validates and persists one resume file.
func (s *StorageService) Upload(ctx context.Context, name, contentType string, size int64, r io.Reader) (*models.StoredFile, error) {
	if !models.AllowedResumeTypes[contentType] {
		metrics.ResumeUploads.WithLabelValues("rejected").Inc()
		return nil, apperrors.NewUnsupportedFileTypeError(contentType)
	}
	if size > s.cfg.MaxUploadSize {
		metrics.ResumeUploads.WithLabelValues("rejected").Inc()
		return nil, apperrors.NewFileTooLargeError(size, s.cfg.MaxUploadSize)
	}

	id := uuid.New().String()
	path := filepath.Join(s.cfg.UploadDir, id+extensionFor(contentType, name))

	if err := s.writeFile(path, r); err != nil {
		metrics.ResumeUploads.WithLabelValues("failed").Inc()
		s.logger.Error("Failed to write uploaded file", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewUploadFailedError(err)
	}

	stored := models.StoredFile{
		ID:          id,
		Name:        name,
		ContentType: contentType,
		Size:        size,
		Path:        path,
		URL:         s.publicURL(id),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.files.Create(ctx, stored); err != nil {
		// Keep disk and database consistent when the metadata write fails.
		if rmErr := os.Remove(path); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned upload", map[string]interface{}{"error": rmErr.Error()})
		}
		metrics.ResumeUploads.WithLabelValues("failed").Inc()
		s.logger.Error("Failed to record uploaded file", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewUploadFailedError(err)
	}

	metrics.ResumeUploads.WithLabelValues("ok").Inc()
	s.logger.Info("Resume uploaded", map[string]interface{}{
		"file_id": id,
		"name":    name,
		"size":    size,
	})
	return &stored, nil
}

// ResolveURL maps a file id to its durable public URL.
func (s *StorageService) ResolveURL(ctx context.Context, fileID string) (string, error) {
	f, err := s.get(ctx, fileID)
	if err != nil {
		return "", err
	}
	return f.URL, nil
}

// Open returns the stored metadata for serving the file itself.
func (s *StorageService) Open(ctx context.Context, fileID string) (*models.StoredFile, error) {
	f, err := s.get(ctx, fileID)
	if err != nil {
		return nil, err
	}
	if _, statErr := os.Stat(f.Path); statErr != nil {
		s.logger.Error("Stored file missing from disk", map[string]interface{}{"file_id": fileID, "error": statErr.Error()})
		return nil, apperrors.NewFileNotFoundError(fileID)
	}
	return f, nil
}

func (s *StorageService) get(ctx context.Context, fileID string) (*models.StoredFile, error) {
	f, err := s.files.GetByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewFileNotFoundError(fileID)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return f, nil
}

func (s *StorageService) writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func (s *StorageService) publicURL(fileID string) string {
	return fmt.Sprintf("%s/api/storage/files/%s", strings.TrimRight(s.cfg.PublicBaseURL, "/"), fileID)
}

func extensionFor(contentType, name string) string {
	switch contentType {
	case "application/pdf":
		return ".pdf"
	case "application/msword":
		return ".doc"
	case "application/vnd.openxmlformats-officedocument.wordprocessingml.document":
		return ".docx"
	}
	return filepath.Ext(name)
}
