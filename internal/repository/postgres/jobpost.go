// internal/repository/postgres/jobpost.go
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"careers-backend/internal/models"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// JobPostRepository persists job postings. Locations are stored as jsonb,
// requirements and sites as text[].
type JobPostRepository struct {
	db *sql.DB
}

func NewJobPostRepository(db *sql.DB) *JobPostRepository {
	return &JobPostRepository{db: db}
}

const jobPostColumns = `id, title, description, department, type, experience, requirements,
	locations, salary_min, salary_max, closing_date, status, poster_link, sites,
	created_at, updated_at`

func (r *JobPostRepository) List(ctx context.Context) ([]models.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list job posts: %w", err)
	}
	defer rows.Close()

	posts := []models.JobPost{}
	for rows.Next() {
		post, err := scanJobPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *JobPostRepository) GetByID(ctx context.Context, id string) (*models.JobPost, error) {
	query := `SELECT ` + jobPostColumns + ` FROM job_posts WHERE id = $1`
	return scanJobPost(r.db.QueryRowContext(ctx, query, id))
}

func (r *JobPostRepository) Create(ctx context.Context, form models.JobFormData) (*models.JobPost, error) {
	locations, err := json.Marshal(form.Locations)
	if err != nil {
		return nil, fmt.Errorf("marshal locations: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	query := `INSERT INTO job_posts (` + jobPostColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`
	_, err = r.db.ExecContext(ctx, query,
		id, form.Title, form.Description, form.Department, string(form.Type), form.Experience,
		textArray(form.Requirements), locations, form.SalaryRange.Min, form.SalaryRange.Max,
		form.ClosingDate, string(form.Status), form.PosterLink, textArray(form.CleanSites()),
		now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert job post: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *JobPostRepository) Update(ctx context.Context, id string, form models.JobFormData) (*models.JobPost, error) {
	locations, err := json.Marshal(form.Locations)
	if err != nil {
		return nil, fmt.Errorf("marshal locations: %w", err)
	}

	query := `UPDATE job_posts SET title = $2, description = $3, department = $4, type = $5,
		experience = $6, requirements = $7, locations = $8, salary_min = $9, salary_max = $10,
		closing_date = $11, status = $12, poster_link = $13, sites = $14, updated_at = $15
		WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query,
		id, form.Title, form.Description, form.Department, string(form.Type), form.Experience,
		textArray(form.Requirements), locations, form.SalaryRange.Min, form.SalaryRange.Max,
		form.ClosingDate, string(form.Status), form.PosterLink, textArray(form.CleanSites()),
		time.Now().UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("update job post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, sql.ErrNoRows
	}
	return r.GetByID(ctx, id)
}

func (r *JobPostRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM job_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job post: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// textArray binds a string slice as text[], coalescing nil to an empty
// array. pq.Array(nil) would bind SQL NULL, which the NOT NULL array
// columns reject.
func textArray(v []string) interface{} {
	if v == nil {
		v = []string{}
	}
	return pq.Array(v)
}

func scanJobPost(row rowScanner) (*models.JobPost, error) {
	var (
		post         models.JobPost
		typeStr      string
		statusStr    string
		requirements pq.StringArray
		sites        pq.StringArray
		locations    []byte
	)
	err := row.Scan(
		&post.ID, &post.Title, &post.Description, &post.Department, &typeStr, &post.Experience,
		&requirements, &locations, &post.SalaryRange.Min, &post.SalaryRange.Max,
		&post.ClosingDate, &statusStr, &post.PosterLink, &sites,
		&post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	post.Type = models.EmploymentType(typeStr)
	post.Status = models.JobStatus(statusStr)
	post.Requirements = requirements
	post.Sites = sites
	if len(locations) > 0 {
		if err := json.Unmarshal(locations, &post.Locations); err != nil {
			return nil, fmt.Errorf("unmarshal locations: %w", err)
		}
	}
	return &post, nil
}
