// internal/services/application.go
package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/common/metrics"
	"careers-backend/internal/common/validation"
	"careers-backend/internal/models"
)

const (
	idempotencyKeyPrefix = "careers:idem:"
	idempotencyTTL       = 24 * time.Hour
	// pendingMarker holds the dedupe slot between SETNX and the store write.
	pendingMarker = "pending"

	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ApplicationService handles intake submissions and staff review.
type ApplicationService struct {
	store    ApplicationStore
	redis    redis.Cmdable
	notifier *Notifier
	logger   logger.Logger
}

func NewApplicationService(store ApplicationStore, rdb redis.Cmdable, notifier *Notifier, log logger.Logger) *ApplicationService {
	return &ApplicationService{store: store, redis: rdb, notifier: notifier, logger: log}
}

// Submit validates and stores an intake submission. When the client sends
// an idempotency key, a repeated submission with the same key returns the
// previously stored application instead of creating a duplicate.
func (s *ApplicationService) Submit(ctx context.Context, payload models.ApplicationPayload, idempotencyKey string) (*models.Application, bool, error) {
	if result := validation.ValidateApplication(payload); !result.Valid {
		if payload.ResumeURL == "" {
			return nil, false, apperrors.NewResumeRequiredError()
		}
		if len(payload.References) > models.MaxReferences {
			return nil, false, apperrors.NewReferenceLimitError(len(payload.References))
		}
		return nil, false, apperrors.NewApplicationValidationError(result.FieldErrors())
	}

	var redisKey string
	if idempotencyKey != "" && s.redis != nil {
		redisKey = idempotencyKeyPrefix + idempotencyKey
		acquired, err := s.redis.SetNX(ctx, redisKey, pendingMarker, idempotencyTTL).Result()
		if err != nil {
			s.logger.Warn("Idempotency check unavailable, continuing without dedupe", map[string]interface{}{"error": err.Error()})
			redisKey = ""
		} else if !acquired {
			return s.replay(ctx, redisKey)
		}
	}

	app, err := s.store.Create(ctx, payload)
	if err != nil {
		if redisKey != "" {
			// Release the slot so the client can retry with the same key.
			if delErr := s.redis.Del(ctx, redisKey).Err(); delErr != nil {
				s.logger.Warn("Failed to release idempotency key", map[string]interface{}{"error": delErr.Error()})
			}
		}
		s.logger.Error("Failed to store application", map[string]interface{}{"error": err.Error()})
		return nil, false, apperrors.NewDatabaseError(err)
	}

	if redisKey != "" {
		if err := s.redis.Set(ctx, redisKey, app.ID, idempotencyTTL).Err(); err != nil {
			s.logger.Warn("Failed to record idempotency key", map[string]interface{}{"error": err.Error()})
		}
	}

	metrics.ApplicationsSubmitted.WithLabelValues(string(app.Source)).Inc()
	s.logger.Info("Application submitted", map[string]interface{}{
		"application_id": app.ID,
		"job_id":         app.JobID,
		"source":         app.Source,
	})

	if s.notifier != nil {
		s.notifier.ApplicationReceived(ctx, app)
	}
	return app, false, nil
}

// replay resolves a reused idempotency key to the application it produced.
func (s *ApplicationService) replay(ctx context.Context, redisKey string) (*models.Application, bool, error) {
	appID, err := s.redis.Get(ctx, redisKey).Result()
	if err != nil || appID == pendingMarker {
		// The first submission is still in flight or its record is gone.
		return nil, false, apperrors.NewDuplicateSubmissionError()
	}

	app, err := s.store.GetByID(ctx, appID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, apperrors.NewDuplicateSubmissionError()
		}
		return nil, false, apperrors.NewDatabaseError(err)
	}

	s.logger.Info("Replayed duplicate submission", map[string]interface{}{
		"application_id": app.ID,
	})
	return app, true, nil
}

// List returns one page of applications, newest first.
func (s *ApplicationService) List(ctx context.Context, page, limit int) (*models.ApplicationList, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	apps, total, err := s.store.List(ctx, page, limit)
	if err != nil {
		s.logger.Error("Failed to list applications", map[string]interface{}{"error": err.Error()})
		return nil, apperrors.NewDatabaseError(err)
	}

	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	return &models.ApplicationList{
		Data:       apps,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, nil
}

func (s *ApplicationService) Get(ctx context.Context, id string) (*models.Application, error) {
	app, err := s.store.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewApplicationNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError(err)
	}
	return app, nil
}

// UpdateStatus moves an application through the review pipeline.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if !models.KnownStatus(status) {
		return nil, apperrors.NewInvalidStatusError(string(status))
	}

	app, err := s.store.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewApplicationNotFoundError(id)
		}
		s.logger.Error("Failed to update application status", map[string]interface{}{"application_id": id, "error": err.Error()})
		return nil, apperrors.NewDatabaseError(err)
	}

	s.logger.Info("Application status updated", map[string]interface{}{
		"application_id": id,
		"status":         status,
	})
	return app, nil
}
