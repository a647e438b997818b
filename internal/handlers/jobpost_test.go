// internal/handlers/jobpost_test.go
package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careers-backend/internal/common/logger"
	"careers-backend/internal/models"
	"careers-backend/internal/services"
)

type stubJobStore struct {
	jobs map[string]*models.JobPost
}

func (s *stubJobStore) List(ctx context.Context) ([]models.JobPost, error) {
	out := []models.JobPost{}
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (s *stubJobStore) GetByID(ctx context.Context, id string) (*models.JobPost, error) {
	if j, ok := s.jobs[id]; ok {
		return j, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubJobStore) Create(ctx context.Context, form models.JobFormData) (*models.JobPost, error) {
	job := &models.JobPost{ID: "job-1", Title: form.Title, Status: form.Status}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *stubJobStore) Update(ctx context.Context, id string, form models.JobFormData) (*models.JobPost, error) {
	if j, ok := s.jobs[id]; ok {
		j.Title = form.Title
		return j, nil
	}
	return nil, sql.ErrNoRows
}

func (s *stubJobStore) Delete(ctx context.Context, id string) error {
	if _, ok := s.jobs[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.jobs, id)
	return nil
}

func jobRouter(t *testing.T, store *stubJobStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := logger.NewTestLogger(t)
	h := NewJobPostHandler(services.NewJobPostService(store, log), log)

	router := gin.New()
	router.GET("/api/jobpost/getposts", h.List)
	router.GET("/api/jobpost/getpostid/:id", h.Get)
	router.POST("/api/jobpost/createpost", h.Create)
	router.PUT("/api/jobpost/updatepost/:id", h.Update)
	router.DELETE("/api/jobpost/deletepost/:id", h.Delete)
	return router
}

func validFormJSON(t *testing.T) []byte {
	form := models.JobFormData{
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
	body, err := json.Marshal(form)
	require.NoError(t, err)
	return body
}

func TestJobPostHandler_Create(t *testing.T) {
	store := &stubJobStore{jobs: map[string]*models.JobPost{}}
	router := jobRouter(t, store)

	req := httptest.NewRequest(http.MethodPost, "/api/jobpost/createpost", bytes.NewReader(validFormJSON(t)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var job models.JobPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &job))
	assert.Equal(t, "job-1", job.ID)
	assert.Equal(t, "Backend Engineer", job.Title)
}

func TestJobPostHandler_Create_ValidationErrorBody(t *testing.T) {
	router := jobRouter(t, &stubJobStore{jobs: map[string]*models.JobPost{}})

	req := httptest.NewRequest(http.MethodPost, "/api/jobpost/createpost", bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var body struct {
		Code   string `json:"code"`
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "JOB_VALIDATION_FAILED", body.Code)
	assert.NotEmpty(t, body.Errors)
}

func TestJobPostHandler_Get_NotFound(t *testing.T) {
	router := jobRouter(t, &stubJobStore{jobs: map[string]*models.JobPost{}})

	req := httptest.NewRequest(http.MethodGet, "/api/jobpost/getpostid/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobPostHandler_Delete(t *testing.T) {
	store := &stubJobStore{jobs: map[string]*models.JobPost{
		"job-1": {ID: "job-1", Title: "Backend Engineer"},
	}}
	router := jobRouter(t, store)

	req := httptest.NewRequest(http.MethodDelete, "/api/jobpost/deletepost/job-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, store.jobs)
}
