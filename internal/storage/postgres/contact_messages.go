// internal/storage/postgres/contact_messages.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

const contactMessageColumns = `id, name, email, subject, message, status,
	created_at, updated_at`

// ContactMessageRepo implements the storage.ContactMessageRepository
// interface using PostgreSQL.
type ContactMessageRepo struct {
	db Querier
}

// NewContactMessageRepo creates a new ContactMessageRepo.
func NewContactMessageRepo(db *pgxpool.Pool) *ContactMessageRepo {
	return &ContactMessageRepo{db: db}
}

var _ storage.ContactMessageRepository = (*ContactMessageRepo)(nil)

func scanContactMessage(row pgx.Row) (*models.ContactMessage, error) {
	var m models.ContactMessage
	err := row.Scan(
		&m.ID,
		&m.Name,
		&m.Email,
		&m.Subject,
		&m.Message,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListAll retrieves every contact message, newest first.
func (r *ContactMessageRepo) ListAll(ctx context.Context) ([]models.ContactMessage, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM contact_messages
		ORDER BY created_at DESC
	`, contactMessageColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying contact messages: %v\n", err)
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}
	defer rows.Close()

	messages, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.ContactMessage])
	if err != nil {
		log.Printf("Error scanning contact messages: %v\n", err)
		return nil, fmt.Errorf("failed to scan contact messages: %w", err)
	}

	if messages == nil {
		messages = []models.ContactMessage{}
	}

	return messages, nil
}

// Create saves a new contact message. Status is hard-coded to unread.
func (r *ContactMessageRepo) Create(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error) {
	query := fmt.Sprintf(`
		INSERT INTO contact_messages (id, name, email, subject, message, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s
	`, contactMessageColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Name,
		req.Email,
		req.Subject,
		req.Message,
		models.ContactMessageStatusUnread,
	)

	created, err := scanContactMessage(row)
	if err != nil {
		log.Printf("Error creating contact message: %v\n", err)
		return nil, fmt.Errorf("failed to create contact message: %w", err)
	}

	log.Printf("Contact message created successfully with ID: %s", created.ID)
	return created, nil
}

// UpdateStatus sets the message's status.
func (r *ContactMessageRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ContactMessageStatus) (*models.ContactMessage, error) {
	query := fmt.Sprintf(`
		UPDATE contact_messages
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s
	`, contactMessageColumns)

	updated, err := scanContactMessage(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Contact message not found for status update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating contact message status %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update contact message status %s: %w", id, err)
	}

	return updated, nil
}

// Delete removes a contact message. Missing ids are a silent no-op.
func (r *ContactMessageRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM contact_messages WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting contact message %s: %v\n", id, err)
		return fmt.Errorf("failed to delete contact message %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Delete for contact message %s matched no rows (no-op)\n", id)
	}
	return nil
}
