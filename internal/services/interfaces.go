package services

import (
	"context"

	"github.com/google/uuid"

	"company-site-api/internal/models"
	"company-site-api/internal/transport/dto"
)

// JobService defines the interface for job-posting business logic.
type JobService interface {
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	CreateJob(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID) error
}

// ApplicationService defines the interface for job-application business logic.
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error)
	ListApplications(ctx context.Context) ([]models.ApplicationWithJobTitle, error)
	ListApplicationsForJob(ctx context.Context, jobID uuid.UUID) ([]models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.JobApplication, error)
}

// AnnouncementService defines the interface for announcement business logic.
type AnnouncementService interface {
	ListPublished(ctx context.Context) ([]models.Announcement, error)
	ListAll(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactService defines the interface for contact-message business logic.
type ContactService interface {
	SubmitMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error)
	ListMessages(ctx context.Context) ([]models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ContactMessage, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// UserService defines the interface for admin-account business logic.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPairResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error)
	Logout(ctx context.Context, refreshToken string) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}
