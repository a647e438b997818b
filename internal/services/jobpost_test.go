// internal/services/jobpost_test.go
package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "careers-backend/internal/common/errors"
	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
)

func validForm() models.JobFormData {
	return models.JobFormData{
		Title:       "Backend Engineer",
		Description: "Build services",
		Department:  "Engineering",
		Type:        models.EmploymentFullTime,
		Status:      models.JobStatusActive,
		Locations:   []models.Location{{City: "Berlin", Country: "Germany", Type: models.LocationHybrid}},
		SalaryRange: models.SalaryRange{Min: 70000, Max: 95000},
		ClosingDate: time.Now().AddDate(0, 2, 0).Format("2006-01-02"),
		Sites:       []string{"linkedin"},
	}
}

func TestJobPostService_Create_ValidationStopsBeforeStore(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobPostService(store, logger.NewTestLogger(t))

	form := validForm()
	form.Title = ""
	form.SalaryRange = models.SalaryRange{Min: 90000, Max: 50000}

	_, err := svc.Create(context.Background(), form)

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeJobValidationFailed))
	assert.Equal(t, 0, store.calls, "an invalid form must never reach the store")

	se, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Len(t, se.FieldErrors, 2)
}

func TestJobPostService_Create_Success(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobPostService(store, logger.NewTestLogger(t))

	job, err := svc.Create(context.Background(), validForm())

	require.NoError(t, err)
	assert.Equal(t, "Backend Engineer", job.Title)
	assert.Equal(t, []string{"linkedin"}, job.Sites)
}

func TestJobPostService_Create_StoreFailure(t *testing.T) {
	store := newFakeJobStore()
	store.createErr = errors.New("connection reset by peer")
	svc := NewJobPostService(store, logger.NewTestLogger(t))

	_, err := svc.Create(context.Background(), validForm())

	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeJobPersistenceFailed))
}

func TestJobPostService_Get_NotFound(t *testing.T) {
	svc := NewJobPostService(newFakeJobStore(), logger.NewTestLogger(t))

	_, err := svc.Get(context.Background(), "missing")

	assert.True(t, apperrors.Is(err, apperrors.ErrCodeJobNotFound))
}

func TestJobPostService_Update_NotFound(t *testing.T) {
	svc := NewJobPostService(newFakeJobStore(), logger.NewTestLogger(t))

	_, err := svc.Update(context.Background(), "missing", validForm())

	assert.True(t, apperrors.Is(err, apperrors.ErrCodeJobNotFound))
}

func TestJobPostService_Delete(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobPostService(store, logger.NewTestLogger(t))

	job, err := svc.Create(context.Background(), validForm())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), job.ID))
	assert.True(t, apperrors.Is(svc.Delete(context.Background(), job.ID), apperrors.ErrCodeJobNotFound))
}
