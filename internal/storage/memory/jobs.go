package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

type jobRepo struct {
	s *state
}

var _ storage.JobRepository = (*jobRepo)(nil)

// cloneJob copies the struct and its skills slice so callers cannot alias the
// store's internal state.
func cloneJob(job models.Job) models.Job {
	out := job
	out.Skills = append([]string(nil), job.Skills...)
	return out
}

func (r *jobRepo) ListActive(ctx context.Context) ([]models.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	jobs := []models.Job{}
	for _, job := range r.s.jobs {
		if job.IsActive {
			jobs = append(jobs, cloneJob(job))
		}
	}
	sortJobsByCreatedAtDesc(jobs)
	return jobs, nil
}

func (r *jobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, job := range r.s.jobs {
		if job.ID == id {
			out := cloneJob(job)
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *jobRepo) Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := time.Now()
	job := models.Job{
		ID:           uuid.New(),
		Title:        req.Title,
		Department:   req.Department,
		Type:         req.Type,
		Location:     req.Location,
		SalaryMin:    req.SalaryMin,
		SalaryMax:    req.SalaryMax,
		Description:  req.Description,
		Requirements: req.Requirements,
		Benefits:     req.Benefits,
		Skills:       append([]string(nil), req.Skills...),
		IsActive:     isActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	r.s.mu.Lock()
	r.s.jobs = append(r.s.jobs, job)
	r.s.mu.Unlock()

	out := cloneJob(job)
	return &out, nil
}

func (r *jobRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	if !req.HasChanges() {
		return nil, fmt.Errorf("no fields provided for update on job %s", id)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.jobs {
		if r.s.jobs[i].ID != id {
			continue
		}
		job := &r.s.jobs[i]
		if req.Title != nil {
			job.Title = *req.Title
		}
		if req.Department != nil {
			job.Department = *req.Department
		}
		if req.Type != nil {
			job.Type = *req.Type
		}
		if req.Location != nil {
			job.Location = *req.Location
		}
		if req.SalaryMin != nil {
			job.SalaryMin = req.SalaryMin
		}
		if req.SalaryMax != nil {
			job.SalaryMax = req.SalaryMax
		}
		if req.Description != nil {
			job.Description = *req.Description
		}
		if req.Requirements != nil {
			job.Requirements = *req.Requirements
		}
		if req.Benefits != nil {
			job.Benefits = req.Benefits
		}
		if req.Skills != nil {
			job.Skills = append([]string(nil), req.Skills...)
		}
		if req.IsActive != nil {
			job.IsActive = *req.IsActive
		}
		job.UpdatedAt = time.Now()

		out := cloneJob(*job)
		return &out, nil
	}

	return nil, storage.ErrNotFound
}

func (r *jobRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.jobs {
		if r.s.jobs[i].ID == id {
			r.s.jobs[i].IsActive = false
			return nil
		}
	}
	// Unknown id is a no-op, same as the postgres adapter.
	return nil
}
