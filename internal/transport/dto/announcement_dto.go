// internal/transport/dto/announcement_dto.go
package dto

import "time"

// CreateAnnouncementRequest defines the structure for creating an announcement.
type CreateAnnouncementRequest struct {
	Title       string     `json:"title" validate:"required"`
	Content     string     `json:"content" validate:"required"`
	Category    string     `json:"category" validate:"required"`
	IsPublished *bool      `json:"is_published,omitempty"` // defaults to false when omitted
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// UpdateAnnouncementRequest defines the structure for a partial announcement
// update. Nil fields are left untouched.
type UpdateAnnouncementRequest struct {
	Title       *string    `json:"title,omitempty" validate:"omitempty,min=1"`
	Content     *string    `json:"content,omitempty" validate:"omitempty,min=1"`
	Category    *string    `json:"category,omitempty" validate:"omitempty,min=1"`
	IsPublished *bool      `json:"is_published,omitempty"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// HasChanges reports whether the update names at least one field.
func (r *UpdateAnnouncementRequest) HasChanges() bool {
	return r.Title != nil || r.Content != nil || r.Category != nil ||
		r.IsPublished != nil || r.PublishedAt != nil
}
