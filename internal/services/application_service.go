package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

type applicationService struct {
	appRepo storage.ApplicationRepository
	jobRepo storage.JobRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo}
}

func (s *applicationService) SubmitApplication(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error) {
	// The referenced job must exist. Checking here turns the adapter's
	// foreign-key conflict into a clean not-found for the caller.
	if _, err := s.jobRepo.GetByID(ctx, req.JobID); err != nil {
		log.Printf("ApplicationService: Job %s not found for application: %v", req.JobID, err)
		return nil, mapRepoError(err, "resolving job for application")
	}

	app, err := s.appRepo.Create(ctx, req)
	if err != nil {
		log.Printf("ApplicationService: Error creating application: %v", err)
		return nil, mapRepoError(err, "creating application")
	}
	return app, nil
}

func (s *applicationService) ListApplications(ctx context.Context) ([]models.ApplicationWithJobTitle, error) {
	apps, err := s.appRepo.ListAllWithJobTitle(ctx)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications: %v", err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}
	return apps, nil
}

func (s *applicationService) ListApplicationsForJob(ctx context.Context, jobID uuid.UUID) ([]models.JobApplication, error) {
	apps, err := s.appRepo.ListForJob(ctx, jobID)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for job %s: %v", jobID, err)
		return nil, fmt.Errorf("internal error listing applications for job: %w", err)
	}
	return apps, nil
}

func (s *applicationService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.JobApplication, error) {
	newStatus := models.ApplicationStatus(status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	app, err := s.appRepo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		log.Printf("ApplicationService: Error updating application status %s: %v", id, err)
		return nil, mapRepoError(err, "updating application status")
	}
	return app, nil
}
