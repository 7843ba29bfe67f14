package storage

import (
	"context"

	"github.com/google/uuid"

	"company-site-api/internal/models"
	"company-site-api/internal/transport/dto"
)

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Upsert inserts a user keyed by id, or merges the non-nil fields into
	// the existing record. updated_at is refreshed either way.
	Upsert(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, error)
}

// JobRepository defines the interface for job posting data operations.
type JobRepository interface {
	// ListActive returns active jobs only, newest first.
	ListActive(ctx context.Context) ([]models.Job, error)
	// GetByID returns the job regardless of its active flag.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	Create(ctx context.Context, req *dto.CreateJobRequest) (*models.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	// SoftDelete flips is_active to false. Missing or already-inactive ids
	// are a silent no-op so the operation is idempotent.
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository defines the interface for job application data
// operations. Applications are never deleted.
type ApplicationRepository interface {
	ListForJob(ctx context.Context, jobID uuid.UUID) ([]models.JobApplication, error)
	// ListAllWithJobTitle joins every application with its job's title,
	// newest first.
	ListAllWithJobTitle(ctx context.Context) ([]models.ApplicationWithJobTitle, error)
	// Create inserts a new application with status forced to pending.
	Create(ctx context.Context, req *dto.CreateJobApplicationRequest) (*models.JobApplication, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.JobApplication, error)
}

// AnnouncementRepository defines the interface for announcement data
// operations. Unlike jobs, announcements are hard-deleted.
type AnnouncementRepository interface {
	// ListPublished returns published announcements ordered by published_at
	// descending, items without a publish date last.
	ListPublished(ctx context.Context) ([]models.Announcement, error)
	ListAll(ctx context.Context) ([]models.Announcement, error)
	Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error)
	// Delete removes the record. Missing ids are a silent no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

// ContactMessageRepository defines the interface for contact message data
// operations.
type ContactMessageRepository interface {
	ListAll(ctx context.Context) ([]models.ContactMessage, error)
	// Create inserts a new message with status forced to unread.
	Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContactMessageStatus) (*models.ContactMessage, error)
	// Delete removes the record. Missing ids are a silent no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

// Store bundles one repository per entity family. The composition root builds
// exactly one Store (postgres-backed or in-memory) and hands it to the
// services; nothing below the port knows which adapter it is talking to.
type Store struct {
	Users           UserRepository
	Jobs            JobRepository
	Applications    ApplicationRepository
	Announcements   AnnouncementRepository
	ContactMessages ContactMessageRepository
}
