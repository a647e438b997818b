// internal/repository/postgres/file.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"careers-backend/internal/models"
)

// FileRepository persists metadata for uploaded resume files.
type FileRepository struct {
	db *sql.DB
}

func NewFileRepository(db *sql.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) Create(ctx context.Context, f models.StoredFile) error {
	query := `INSERT INTO stored_files (id, name, content_type, size, path, url, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Name, f.ContentType, f.Size, f.Path, f.URL, f.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert stored file: %w", err)
	}
	return nil
}

func (r *FileRepository) GetByID(ctx context.Context, id string) (*models.StoredFile, error) {
	var f models.StoredFile
	query := `SELECT id, name, content_type, size, path, url, created_at
		FROM stored_files WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&f.ID, &f.Name, &f.ContentType, &f.Size, &f.Path, &f.URL, &f.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}
