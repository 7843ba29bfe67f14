// internal/storage/postgres/applications.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

const applicationColumns = `id, job_id, first_name, last_name, email,
	portfolio_url, cover_letter, resume_url, status, created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.JobApplication, error) {
	var app models.JobApplication
	err := row.Scan(
		&app.ID,
		&app.JobID,
		&app.FirstName,
		&app.LastName,
		&app.Email,
		&app.PortfolioURL,
		&app.CoverLetter,
		&app.ResumeURL,
		&app.Status,
		&app.CreatedAt,
		&app.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListForJob retrieves applications submitted against one job, newest first.
func (r *ApplicationRepo) ListForJob(ctx context.Context, jobID uuid.UUID) ([]models.JobApplication, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM job_applications
		WHERE job_id = $1
		ORDER BY created_at DESC
	`, applicationColumns)

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications for job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to query applications for job: %w", err)
	}
	defer rows.Close()

	apps, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.JobApplication])
	if err != nil {
		log.Printf("Error scanning applications for job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to scan applications for job: %w", err)
	}

	if apps == nil {
		apps = []models.JobApplication{}
	}

	return apps, nil
}

// ListAllWithJobTitle joins every application with its job's title, newest
// first. The inner join relies on jobs never being hard-deleted.
func (r *ApplicationRepo) ListAllWithJobTitle(ctx context.Context) ([]models.ApplicationWithJobTitle, error) {
	query := `
		SELECT a.id, a.job_id, a.first_name, a.last_name, a.email,
			a.portfolio_url, a.cover_letter, a.resume_url, a.status,
			a.created_at, a.updated_at, j.title AS job_title
		FROM job_applications a
		JOIN jobs j ON j.id = a.job_id
		ORDER BY a.created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying all applications: %v\n", err)
		return nil, fmt.Errorf("failed to query all applications: %w", err)
	}
	defer rows.Close()

	results := []models.ApplicationWithJobTitle{}
	for rows.Next() {
		var item models.ApplicationWithJobTitle
		err := rows.Scan(
			&item.ID,
			&item.JobID,
			&item.FirstName,
			&item.LastName,
			&item.Email,
			&item.PortfolioURL,
			&item.CoverLetter,
			&item.ResumeURL,
			&item.Status,
			&item.CreatedAt,
			&item.UpdatedAt,
			&item.JobTitle,
		)
		if err != nil {
			log.Printf("Error scanning application row: %v\n", err)
			return nil, fmt.Errorf("failed to scan application row: %w", err)
		}
		results = append(results, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read application rows: %w", err)
	}

	return results, nil
}

// Create saves a new application. Status is hard-coded to pending no matter
// what the caller sent.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	query := fmt.Sprintf(`
		INSERT INTO job_applications (id, job_id, first_name, last_name, email,
			portfolio_url, cover_letter, resume_url, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s
	`, applicationColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.JobID,
		req.FirstName,
		req.LastName,
		req.Email,
		req.PortfolioURL,
		req.CoverLetter,
		req.ResumeURL,
		models.ApplicationStatusPending,
	)

	app, err := scanApplication(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			log.Printf("Error creating application: unknown job %s: %v\n", req.JobID, err)
			return nil, fmt.Errorf("failed to create application: invalid job ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", app.ID)
	return app, nil
}

// UpdateStatus sets the application's status.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	query := fmt.Sprintf(`
		UPDATE job_applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Application not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application status %s: %w", id, err)
	}

	return app, nil
}
