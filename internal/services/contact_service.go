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

type contactService struct {
	repo storage.ContactMessageRepository
}

// NewContactService creates a new instance of ContactService.
func NewContactService(repo storage.ContactMessageRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) SubmitMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error) {
	msg, err := s.repo.Create(ctx, req)
	if err != nil {
		log.Printf("ContactService: Error creating contact message: %v", err)
		return nil, fmt.Errorf("internal error creating contact message: %w", err)
	}
	return msg, nil
}

func (s *contactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	msgs, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Printf("ContactService: Error listing contact messages: %v", err)
		return nil, fmt.Errorf("internal error listing contact messages: %w", err)
	}
	return msgs, nil
}

func (s *contactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ContactMessage, error) {
	newStatus := models.ContactMessageStatus(status)
	if !newStatus.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	msg, err := s.repo.UpdateStatus(ctx, id, newStatus)
	if err != nil {
		log.Printf("ContactService: Error updating contact message status %s: %v", id, err)
		return nil, mapRepoError(err, "updating contact message status")
	}
	return msg, nil
}

func (s *contactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		log.Printf("ContactService: Error deleting contact message %s: %v", id, err)
		return mapRepoError(err, "deleting contact message")
	}
	return nil
}
