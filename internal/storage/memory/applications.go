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

type applicationRepo struct {
	s *state
}

var _ storage.ApplicationRepository = (*applicationRepo)(nil)

func (r *applicationRepo) ListForJob(ctx context.Context, jobID uuid.UUID) ([]models.JobApplication, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	apps := []models.JobApplication{}
	for _, app := range r.s.applications {
		if app.JobID == jobID {
			apps = append(apps, app)
		}
	}
	sortApplicationsByCreatedAtDesc(apps)
	return apps, nil
}

func (r *applicationRepo) ListAllWithJobTitle(ctx context.Context) ([]models.ApplicationWithJobTitle, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	titles := make(map[uuid.UUID]string, len(r.s.jobs))
	for _, job := range r.s.jobs {
		titles[job.ID] = job.Title
	}

	apps := append([]models.JobApplication(nil), r.s.applications...)
	sortApplicationsByCreatedAtDesc(apps)

	results := []models.ApplicationWithJobTitle{}
	for _, app := range apps {
		title, ok := titles[app.JobID]
		if !ok {
			// Inner-join semantics: an application whose job record is gone
			// is excluded, exactly as the postgres adapter would.
			continue
		}
		results = append(results, models.ApplicationWithJobTitle{
			JobApplication: app,
			JobTitle:       title,
		})
	}
	return results, nil
}

func (r *applicationRepo) Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Mirror the postgres foreign key: the referenced job must exist.
	jobExists := false
	for _, job := range r.s.jobs {
		if job.ID == req.JobID {
			jobExists = true
			break
		}
	}
	if !jobExists {
		return nil, fmt.Errorf("failed to create application: invalid job ID: %w", storage.ErrConflict)
	}

	now := time.Now()
	app := models.JobApplication{
		ID:           uuid.New(),
		JobID:        req.JobID,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PortfolioURL: req.PortfolioURL,
		CoverLetter:  req.CoverLetter,
		ResumeURL:    req.ResumeURL,
		Status:       models.ApplicationStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r.s.applications = append(r.s.applications, app)

	out := app
	return &out, nil
}

func (r *applicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.applications {
		if r.s.applications[i].ID == id {
			r.s.applications[i].Status = status
			r.s.applications[i].UpdatedAt = time.Now()
			out := r.s.applications[i]
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}
