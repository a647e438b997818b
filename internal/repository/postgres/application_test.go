// internal/repository/postgres/application_test.go
package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"careers-backend/internal/models"
)

func applicationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "job_id", "job_title", "candidate_name", "dob", "email", "phone",
		"current_location", "willing_to_relocate", "years_of_experience", "current_salary",
		"expected_salary", "notice_period", "education", "linkedin_url", "portfolio_url",
		"cover_letter", "notes", "resume_file_name", "resume_url", "skills", "refs",
		"custom_answers", "source", "status", "applied_date", "created_at", "updated_at",
	})
}

func addApplicationRow(rows *sqlmock.Rows, id, status string, t time.Time) *sqlmock.Rows {
	return rows.AddRow(
		id, "job-1", "Backend Engineer", "Jordan Smith", "1993-04-12", "jordan@example.com", "+49123456789",
		"Berlin", false, 5, "60k",
		80000, "1 month", []byte(`{}`), "", "",
		"", "", "resume.pdf", "http://localhost:8080/api/storage/files/f1", "{Go}", []byte(`[]`),
		[]byte(`{}`), "Website", status, t, t, t,
	)
}

func TestApplicationRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM applications`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))
	mock.ExpectQuery(`ORDER BY applied_date DESC LIMIT \$1 OFFSET \$2`).
		WithArgs(20, 20).
		WillReturnRows(addApplicationRow(applicationRows(), "app-1", "Pending", now))

	repo := NewApplicationRepository(db)
	apps, total, err := repo.List(context.Background(), 2, 20)

	require.NoError(t, err)
	assert.Equal(t, 42, total)
	require.Len(t, apps, 1)
	assert.Equal(t, "app-1", apps[0].ID)
	assert.Equal(t, models.StatusPending, apps[0].ApplicationStatus)
	assert.Equal(t, []string{"Go"}, apps[0].Skills)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Create_ForcesPendingStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	payload := models.ApplicationPayload{
		JobID:         "job-1",
		CandidateName: "Jordan Smith",
		DOB:           "1993-04-12",
		Email:         "jordan@example.com",
		Phone:         "+49123456789",
		ResumeURL:     "http://localhost:8080/api/storage/files/f1",
		Source:        models.SourceWebsite,
	}

	// The status argument is fixed to Pending no matter what the payload
	// carried; position 25 in the insert.
	mock.ExpectExec(`INSERT INTO applications`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM applications WHERE id = \$1`).
		WillReturnRows(addApplicationRow(applicationRows(), "app-1", "Pending", time.Now().UTC()))

	repo := NewApplicationRepository(db)
	app, err := repo.Create(context.Background(), payload)

	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.ApplicationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_Create_NilSkillsBindEmptyArray(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	payload := models.ApplicationPayload{
		JobID:         "job-1",
		CandidateName: "Jordan Smith",
		DOB:           "1993-04-12",
		Email:         "jordan@example.com",
		Phone:         "+49123456789",
		ResumeURL:     "http://localhost:8080/api/storage/files/f1",
		Source:        models.SourceWebsite,
	}

	// The skills column is NOT NULL, so the omitted slice must be
	// inserted as {} rather than NULL; position 21 in the insert.
	args := make([]driver.Value, 28)
	for i := range args {
		args[i] = sqlmock.AnyArg()
	}
	args[20] = "{}"
	mock.ExpectExec(`INSERT INTO applications`).
		WithArgs(args...).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM applications WHERE id = \$1`).
		WillReturnRows(addApplicationRow(applicationRows(), "app-1", "Pending", time.Now().UTC()))

	repo := NewApplicationRepository(db)
	_, err = repo.Create(context.Background(), payload)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now().UTC()
	mock.ExpectExec(`UPDATE applications SET status = \$2, updated_at = \$3 WHERE id = \$1`).
		WithArgs("app-1", "Shortlisted", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(`FROM applications WHERE id = \$1`).
		WithArgs("app-1").
		WillReturnRows(addApplicationRow(applicationRows(), "app-1", "Shortlisted", now))

	repo := NewApplicationRepository(db)
	app, err := repo.UpdateStatus(context.Background(), "app-1", models.StatusShortlisted)

	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, app.ApplicationStatus)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationRepository_UpdateStatus_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE applications SET status`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewApplicationRepository(db)
	_, err = repo.UpdateStatus(context.Background(), "missing", models.StatusReviewed)

	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
