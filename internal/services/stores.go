// internal/services/stores.go
package services

import (
	"context"

	"careers-backend/internal/models"
)

// Store interfaces narrow the repositories to what each service needs;
// tests substitute fakes.

type JobPostStore interface {
	List(ctx context.Context) ([]models.JobPost, error)
	GetByID(ctx context.Context, id string) (*models.JobPost, error)
	Create(ctx context.Context, form models.JobFormData) (*models.JobPost, error)
	Update(ctx context.Context, id string, form models.JobFormData) (*models.JobPost, error)
	Delete(ctx context.Context, id string) error
}

type ApplicationStore interface {
	List(ctx context.Context, page, limit int) ([]models.Application, int, error)
	GetByID(ctx context.Context, id string) (*models.Application, error)
	Create(ctx context.Context, p models.ApplicationPayload) (*models.Application, error)
	UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error)
}

type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash, role string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

type FileStore interface {
	Create(ctx context.Context, f models.StoredFile) error
	GetByID(ctx context.Context, id string) (*models.StoredFile, error)
}
