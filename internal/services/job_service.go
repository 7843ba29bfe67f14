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

type jobService struct {
	jobRepo storage.JobRepository
}

// NewJobService creates a new instance of JobService.
func NewJobService(jobRepo storage.JobRepository) JobService {
	return &jobService{jobRepo: jobRepo}
}

func (s *jobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		log.Printf("JobService: Error listing jobs: %v", err)
		return nil, fmt.Errorf("internal error listing jobs: %w", err)
	}
	return jobs, nil
}

func (s *jobService) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}
	return job, nil
}

func (s *jobService) CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.Create(ctx, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, fmt.Errorf("internal error creating job: %w", err)
	}
	return job, nil
}

func (s *jobService) UpdateJob(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	if !req.HasChanges() {
		return nil, fmt.Errorf("%w: no fields provided for update", ErrValidation)
	}
	job, err := s.jobRepo.Update(ctx, id, req)
	if err != nil {
		log.Printf("JobService: Error updating job %s: %v", id, err)
		return nil, mapRepoError(err, "updating job")
	}
	return job, nil
}

func (s *jobService) DeleteJob(ctx context.Context, id uuid.UUID) error {
	// Soft delete: the posting stays retrievable by id so application
	// history keeps resolving. Idempotent by contract.
	if err := s.jobRepo.SoftDelete(ctx, id); err != nil {
		log.Printf("JobService: Error deleting job %s: %v", id, err)
		return mapRepoError(err, "deleting job")
	}
	return nil
}
