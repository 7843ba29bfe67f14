package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

type contactMessageRepo struct {
	s *state
}

var _ storage.ContactMessageRepository = (*contactMessageRepo)(nil)

func (r *contactMessageRepo) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	msgs := append([]models.ContactMessage(nil), r.s.contactMessages...)
	sortContactMessagesByCreatedAtDesc(msgs)
	return msgs, nil
}

func (r *contactMessageRepo) Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error) {
	now := time.Now()
	msg := models.ContactMessage{
		ID:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		Status:    models.ContactMessageStatusUnread,
		CreatedAt: now,
		UpdatedAt: now,
	}

	r.s.mu.Lock()
	r.s.contactMessages = append(r.s.contactMessages, msg)
	r.s.mu.Unlock()

	out := msg
	return &out, nil
}

func (r *contactMessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContactMessageStatus) (*models.ContactMessage, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.contactMessages {
		if r.s.contactMessages[i].ID == id {
			r.s.contactMessages[i].Status = status
			r.s.contactMessages[i].UpdatedAt = time.Now()
			out := r.s.contactMessages[i]
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *contactMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for i := range r.s.contactMessages {
		if r.s.contactMessages[i].ID == id {
			r.s.contactMessages = append(r.s.contactMessages[:i], r.s.contactMessages[i+1:]...)
			return nil
		}
	}
	return nil
}
