package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

type announcementService struct {
	repo storage.AnnouncementRepository
	now  func() time.Time
}

// NewAnnouncementService creates a new instance of AnnouncementService.
func NewAnnouncementService(repo storage.AnnouncementRepository) AnnouncementService {
	return &announcementService{repo: repo, now: time.Now}
}

func (s *announcementService) ListPublished(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.repo.ListPublished(ctx)
	if err != nil {
		log.Printf("AnnouncementService: Error listing published announcements: %v", err)
		return nil, fmt.Errorf("internal error listing published announcements: %w", err)
	}
	return items, nil
}

func (s *announcementService) ListAll(ctx context.Context) ([]models.Announcement, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("AnnouncementService: Error listing announcements: %v", err)
		return nil, fmt.Errorf("internal error listing announcements: %w", err)
	}
	return items, nil
}

func (s *announcementService) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	// Publishing without an explicit date stamps the current time, so the
	// public listing's publish-date ordering always has something to sort on.
	if req.IsPublished != nil && *req.IsPublished && req.PublishedAt == nil {
		now := s.now()
		req.PublishedAt = &now
	}

	item, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Printf("AnnouncementService: Error creating announcement: %v", err)
		return nil, fmt.Errorf("internal error creating announcement: %w", err)
	}
	return item, nil
}

func (s *announcementService) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	if !req.HasChanges() {
		return nil, fmt.Errorf("%w: no fields provided for update", ErrValidation)
	}

	// Same stamping rule as Create when this update is what publishes it.
	if req.IsPublished != nil && *req.IsPublished && req.PublishedAt == nil {
		now := s.now()
		req.PublishedAt = &now
	}

	item, err := s.repo.Update(ctx, id, req)
	if err != nil {
		log.Printf("AnnouncementService: Error updating announcement %s: %v", id, err)
		return nil, mapRepoError(err, "updating announcement")
	}
	return item, nil
}

func (s *announcementService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("AnnouncementService: Error deleting announcement %s: %v", id, err)
		return mapRepoError(err, "deleting announcement")
	}
	return nil
}
