// internal/services/jobpost.go
package services

import (
	"context"
	"database/sql"
	"errors"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/common/validation"
	"careers-backend/internal/models"
)

// JobPostService owns the job posting lifecycle. All writes go through
// strict validation before touching the store.
type JobPostService struct {
	store  JobPostStore
	logger logger.Logger
}

func NewJobPostService(store JobPostStore, log logger.Logger) *JobPostService {
	return &JobPostService{store: store, logger: log}
}

func (s *JobPostService) List(ctx context.Context) ([]models.JobPost, error) {
	jobs, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("Failed to list job posts", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewDatabaseError(err)
	}
	return jobs, nil
}

func (s *JobPostService) Get(ctx context.Context, id string) (*models.JobPost, error) {
	job, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewJobNotFoundError(id)
		}
		s.logger.Error("Failed to load job post", map[string]interface{}{"job_id": id, "error": err.Error()})
		return nil, apperrors.NewDatabaseError(err)
	}
	return job, nil
}

func (s *JobPostService) Create(ctx context.Context, form models.JobFormData) (*models.JobPost, error) {
	if result := validation.ValidateJobForm(form, validation.ModeStrict); !result.Valid {
		return nil, apperrors.NewJobValidationError(result.FieldErrors())
	}

	job, err := s.store.Create(ctx, form)
	if err != nil {
		s.logger.Error("Failed to create job post", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewJobPersistenceError(err)
	}

	s.logger.Info("Job post created", map[string]interface{}{
		"job_id": job.ID,
		"title":  job.Title,
	})
	return job, nil
}

func (s *JobPostService) Update(ctx context.Context, id string, form models.JobFormData) (*models.JobPost, error) {
	if result := validation.ValidateJobForm(form, validation.ModeStrict); !result.Valid {
		return nil, apperrors.NewJobValidationError(result.FieldErrors())
	}

	job, err := s.store.Update(ctx, id, form)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewJobNotFoundError(id)
		}
		s.logger.Error("Failed to update job post", map[string]interface{}{"job_id": id, "error": err.Error()})
		return nil, apperrors.NewJobPersistenceError(err)
	}

	s.logger.Info("Job post updated", map[string]interface{}{"job_id": id})
	return job, nil
}

func (s *JobPostService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return apperrors.NewJobNotFoundError(id)
		}
		s.logger.Error("Failed to delete job post", map[string]interface{}{"job_id": id, "error": err.Error()})
		return apperrors.NewJobPersistenceError(err)
	}

	s.logger.Info("Job post deleted", map[string]interface{}{"job_id": id})
	return nil
}
