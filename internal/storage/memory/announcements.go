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

type announcementRepo struct {
	s *state
}

var _ storage.AnnouncementRepository = (*announcementRepo)(nil)

func (r *announcementRepo) ListPublished(ctx context.Context) ([]models.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := []models.Announcement{}
	for _, a := range r.s.announcements {
		if a.IsPublished {
			items = append(items, a)
		}
	}
	sortAnnouncementsByPublishedAtDesc(items)
	return items, nil
}

func (r *announcementRepo) ListAll(ctx context.Context) ([]models.Announcement, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	items := append([]models.Announcement(nil), r.s.announcements...)
	sortAnnouncementsByCreatedAtDesc(items)
	return items, nil
}

func (r *announcementRepo) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	now := time.Now()
	item := models.Announcement{
		ID:          uuid.New(),
		Title:       req.Title,
		Content:     req.Content,
		Category:    req.Category,
		IsPublished: isPublished,
		PublishedAt: req.PublishedAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	r.s.mu.Lock()
	r.s.announcements = append(r.s.announcements, item)
	r.s.mu.Unlock()

	out := item
	return &out, nil
}

func (r *announcementRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	if !req.HasChanges() {
		return nil, fmt.Errorf("no fields provided for update on announcement %s", id)
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.announcements {
		if r.s.announcements[i].ID != id {
			continue
		}
		item := &r.s.announcements[i]
		if req.Title != nil {
			item.Title = *req.Title
		}
		if req.Content != nil {
			item.Content = *req.Content
		}
		if req.Category != nil {
			item.Category = *req.Category
		}
		if req.IsPublished != nil {
			item.IsPublished = *req.IsPublished
		}
		if req.PublishedAt != nil {
			item.PublishedAt = req.PublishedAt
		}
		item.UpdatedAt = time.Now()

		out := *item
		return &out, nil
	}

	return nil, storage.ErrNotFound
}

func (r *announcementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.announcements {
		if r.s.announcements[i].ID == id {
			r.s.announcements = append(r.s.announcements[:i], r.s.announcements[i+1:]...)
			return nil
		}
	}
	// Unknown id is a no-op, same as the postgres adapter.
	return nil
}
