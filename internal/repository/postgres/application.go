// internal/repository/postgres/application.go
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

// ApplicationRepository persists candidate applications. Education,
// references and custom answers are stored as jsonb, skills as text[].
type ApplicationRepository struct {
	db *sql.DB
}

func NewApplicationRepository(db *sql.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

const applicationColumns = `id, job_id, job_title, candidate_name, dob, email, phone,
	current_location, willing_to_relocate, years_of_experience, current_salary,
	expected_salary, notice_period, education, linkedin_url, portfolio_url,
	cover_letter, notes, resume_file_name, resume_url, skills, refs,
	custom_answers, source, status, applied_date, created_at, updated_at`

func (r *ApplicationRepository) List(ctx context.Context, page, limit int) ([]models.Application, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count applications: %w", err)
	}

	offset := (page - 1) * limit
	query := `SELECT ` + applicationColumns + ` FROM applications
		ORDER BY applied_date DESC LIMIT $1 OFFSET $2`
	rows, err := r.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	apps := []models.Application{}
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, 0, err
		}
		apps = append(apps, *app)
	}
	return apps, total, rows.Err()
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications WHERE id = $1`
	return scanApplication(r.db.QueryRowContext(ctx, query, id))
}

func (r *ApplicationRepository) Create(ctx context.Context, p models.ApplicationPayload) (*models.Application, error) {
	education, err := json.Marshal(p.Education)
	if err != nil {
		return nil, fmt.Errorf("marshal education: %w", err)
	}
	refs, err := json.Marshal(p.References)
	if err != nil {
		return nil, fmt.Errorf("marshal references: %w", err)
	}
	answers, err := json.Marshal(p.CustomAnswers)
	if err != nil {
		return nil, fmt.Errorf("marshal custom answers: %w", err)
	}

	id := uuid.New().String()
	now := time.Now().UTC()
	query := `INSERT INTO applications (` + applicationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28)`
	_, err = r.db.ExecContext(ctx, query,
		id, p.JobID, p.JobTitle, p.CandidateName, p.DOB, p.Email, p.Phone,
		p.CurrentLocation, p.WillingToRelocate, p.YearsOfExperience, p.CurrentSalary,
		p.ExpectedSalary, p.NoticePeriod, education, p.LinkedInURL, p.PortfolioURL,
		p.CoverLetter, p.Notes, p.ResumeFileName, p.ResumeURL, textArray(p.Skills), refs,
		answers, string(p.Source), string(models.StatusPending), now, now, now,
	)
	if err != nil {
		return nil, fmt.Errorf("insert application: %w", err)
	}
	return r.GetByID(ctx, id)
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	query := `UPDATE applications SET status = $2, updated_at = $3 WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id, string(status), time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("update application status: %w", err)
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

func scanApplication(row rowScanner) (*models.Application, error) {
	var (
		app       models.Application
		skills    pq.StringArray
		education []byte
		refs      []byte
		answers   []byte
		source    string
		status    string
	)
	err := row.Scan(
		&app.ID, &app.JobID, &app.JobTitle, &app.CandidateName, &app.DOB, &app.Email, &app.Phone,
		&app.CurrentLocation, &app.WillingToRelocate, &app.YearsOfExperience, &app.CurrentSalary,
		&app.ExpectedSalary, &app.NoticePeriod, &education, &app.LinkedInURL, &app.PortfolioURL,
		&app.CoverLetter, &app.Notes, &app.ResumeFileName, &app.ResumeURL, &skills, &refs,
		&answers, &source, &status, &app.AppliedDate, &app.CreatedAt, &app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	app.Skills = skills
	app.Source = models.ApplicationSource(source)
	app.ApplicationStatus = models.ApplicationStatus(status)
	if len(education) > 0 {
		if err := json.Unmarshal(education, &app.Education); err != nil {
			return nil, fmt.Errorf("unmarshal education: %w", err)
		}
	}
	if len(refs) > 0 {
		if err := json.Unmarshal(refs, &app.References); err != nil {
			return nil, fmt.Errorf("unmarshal references: %w", err)
		}
	}
	if len(answers) > 0 {
		if err := json.Unmarshal(answers, &app.CustomAnswers); err != nil {
			return nil, fmt.Errorf("unmarshal custom answers: %w", err)
		}
	}
	return &app, nil
}
