// internal/storage/postgres/jobs.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

const jobColumns = `id, title, department, type, location, salary_min, salary_max,
	description, requirements, benefits, skills, is_active, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

// Compile-time check to ensure JobRepo implements JobRepository
var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var job models.Job
	err := row.Scan(
		&job.ID,
		&job.Title,
		&job.Department,
		&job.Type,
		&job.Location,
		&job.SalaryMin,
		&job.SalaryMax,
		&job.Description,
		&job.Requirements,
		&job.Benefits,
		&job.Skills,
		&job.IsActive,
		&job.CreatedAt,
		&job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListActive retrieves active job postings, newest first.
func (r *JobRepo) ListActive(ctx context.Context) ([]models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE is_active = TRUE
		ORDER BY created_at DESC
	`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying active jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query active jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning active jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan active jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{} // Return empty slice, not nil
	}

	return jobs, nil
}

// GetByID retrieves a specific job by its ID, active or not.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM jobs
		WHERE id = $1
	`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	return job, nil
}

// Create saves a new job posting. is_active defaults to true when omitted.
func (r *JobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	query := fmt.Sprintf(`
		INSERT INTO jobs (id, title, department, type, location, salary_min, salary_max,
			description, requirements, benefits, skills, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		RETURNING %s
	`, jobColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(), // Generate ID server-side
		req.Title,
		req.Department,
		req.Type,
		req.Location,
		req.SalaryMin,
		req.SalaryMax,
		req.Description,
		req.Requirements,
		req.Benefits,
		req.Skills,
		isActive,
	)

	createdJob, err := scanJob(row)
	if err != nil {
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", createdJob.ID)
	return createdJob, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	addClause := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.Title != nil {
		addClause("title", *req.Title)
	}
	if req.Department != nil {
		addClause("department", *req.Department)
	}
	if req.Type != nil {
		addClause("type", *req.Type)
	}
	if req.Location != nil {
		addClause("location", *req.Location)
	}
	if req.SalaryMin != nil {
		addClause("salary_min", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		addClause("salary_max", *req.SalaryMax)
	}
	if req.Description != nil {
		addClause("description", *req.Description)
	}
	if req.Requirements != nil {
		addClause("requirements", *req.Requirements)
	}
	if req.Benefits != nil {
		addClause("benefits", *req.Benefits)
	}
	if req.Skills != nil {
		addClause("skills", req.Skills)
	}
	if req.IsActive != nil {
		addClause("is_active", *req.IsActive)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for job %s with no fields to change.", id)
		return nil, fmt.Errorf("no fields provided for update on job %s", id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE jobs
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argID, jobColumns)

	updatedJob, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Job not found for update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job %s: %w", id, err)
	}

	log.Printf("Job updated successfully: %s", updatedJob.ID)
	return updatedJob, nil
}

// SoftDelete flips is_active to false. Missing or already-inactive rows are a
// silent no-op, so calling this twice produces the same end state.
func (r *JobRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE jobs SET is_active = FALSE WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error soft-deleting job %s: %v\n", id, err)
		return fmt.Errorf("failed to soft-delete job %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Soft delete for job %s matched no rows (no-op)\n", id)
	}
	return nil
}
