// internal/services/fakes_test.go
package services

import (
	"context"
	"database/sql"

	"careers-backend/internal/models"
)

type fakeJobStore struct {
	jobs      map[string]*models.JobPost
	createErr error
	calls     int
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[string]*models.JobPost)}
}

func (s *fakeJobStore) List(ctx context.Context) ([]models.JobPost, error) {
	s.calls++
	out := []models.JobPost{}
	for _, j := range s.jobs {
		out = append(out, *j)
	}
	return out, nil
}

func (s *fakeJobStore) GetByID(ctx context.Context, id string) (*models.JobPost, error) {
	s.calls++
	if j, ok := s.jobs[id]; ok {
		return j, nil
	}
	return nil, sql.ErrNoRows
}

func (s *fakeJobStore) Create(ctx context.Context, form models.JobFormData) (*models.JobPost, error) {
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	job := &models.JobPost{
		ID:          "job-1",
		Title:       form.Title,
		Description: form.Description,
		Department:  form.Department,
		Type:        form.Type,
		Status:      form.Status,
		Locations:   form.Locations,
		SalaryRange: form.SalaryRange,
		ClosingDate: form.ClosingDate,
		Sites:       form.CleanSites(),
	}
	s.jobs[job.ID] = job
	return job, nil
}

func (s *fakeJobStore) Update(ctx context.Context, id string, form models.JobFormData) (*models.JobPost, error) {
	s.calls++
	job, ok := s.jobs[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	job.Title = form.Title
	return job, nil
}

func (s *fakeJobStore) Delete(ctx context.Context, id string) error {
	s.calls++
	if _, ok := s.jobs[id]; !ok {
		return sql.ErrNoRows
	}
	delete(s.jobs, id)
	return nil
}

type fakeAppStore struct {
	apps      map[string]*models.Application
	createErr error
	created   int
}

func newFakeAppStore() *fakeAppStore {
	return &fakeAppStore{apps: make(map[string]*models.Application)}
}

func (s *fakeAppStore) List(ctx context.Context, page, limit int) ([]models.Application, int, error) {
	out := []models.Application{}
	for _, a := range s.apps {
		out = append(out, *a)
	}
	return out, len(out), nil
}

func (s *fakeAppStore) GetByID(ctx context.Context, id string) (*models.Application, error) {
	if a, ok := s.apps[id]; ok {
		return a, nil
	}
	return nil, sql.ErrNoRows
}

func (s *fakeAppStore) Create(ctx context.Context, p models.ApplicationPayload) (*models.Application, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created++
	app := &models.Application{
		ID:                "app-1",
		JobID:             p.JobID,
		CandidateName:     p.CandidateName,
		Email:             p.Email,
		Phone:             p.Phone,
		ResumeURL:         p.ResumeURL,
		Source:            p.Source,
		ApplicationStatus: models.StatusPending,
	}
	s.apps[app.ID] = app
	return app, nil
}

func (s *fakeAppStore) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	app, ok := s.apps[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	app.ApplicationStatus = status
	return app, nil
}

type fakeUserStore struct {
	users     map[string]*models.User
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) Create(ctx context.Context, name, email, passwordHash, role string) (*models.User, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	user := &models.User{ID: "user-1", Name: name, Email: email, PasswordHash: passwordHash, Role: role}
	s.users[email] = user
	return user, nil
}

func (s *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	if u, ok := s.users[email]; ok {
		return u, nil
	}
	return nil, sql.ErrNoRows
}

type fakeFileStore struct {
	files     map[string]*models.StoredFile
	createErr error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{files: make(map[string]*models.StoredFile)}
}

func (s *fakeFileStore) Create(ctx context.Context, f models.StoredFile) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.files[f.ID] = &f
	return nil
}

func (s *fakeFileStore) GetByID(ctx context.Context, id string) (*models.StoredFile, error) {
	if f, ok := s.files[id]; ok {
		return f, nil
	}
	return nil, sql.ErrNoRows
}
