// internal/storage/postgres/announcements.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

const announcementColumns = `id, title, content, category, is_published,
	published_at, created_at, updated_at`

// AnnouncementRepo implements the storage.AnnouncementRepository interface
// using PostgreSQL.
type AnnouncementRepo struct {
	db Querier
}

// NewAnnouncementRepo creates a new AnnouncementRepo.
func NewAnnouncementRepo(db *pgxpool.Pool) *AnnouncementRepo {
	return &AnnouncementRepo{db: db}
}

var _ storage.AnnouncementRepository = (*AnnouncementRepo)(nil)

func scanAnnouncement(row pgx.Row) (*models.Announcement, error) {
	var a models.Announcement
	err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Content,
		&a.Category,
		&a.IsPublished,
		&a.PublishedAt,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AnnouncementRepo) collect(ctx context.Context, query string) ([]models.Announcement, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying announcements: %v\n", err)
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Announcement])
	if err != nil {
		log.Printf("Error scanning announcements: %v\n", err)
		return nil, fmt.Errorf("failed to scan announcements: %w", err)
	}

	if items == nil {
		items = []models.Announcement{}
	}
	return items, nil
}

// ListPublished retrieves published announcements, newest publish date first.
// Published items without a date sort last.
func (r *AnnouncementRepo) ListPublished(ctx context.Context) ([]models.Announcement, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM announcements
		WHERE is_published = TRUE
		ORDER BY published_at DESC NULLS LAST
	`, announcementColumns)
	return r.collect(ctx, query)
}

// ListAll retrieves every announcement for the admin panel, newest first.
func (r *AnnouncementRepo) ListAll(ctx context.Context) ([]models.Announcement, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM announcements
		ORDER BY created_at DESC
	`, announcementColumns)
	return r.collect(ctx, query)
}

// Create saves a new announcement. is_published defaults to false.
func (r *AnnouncementRepo) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	isPublished := false
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	query := fmt.Sprintf(`
		INSERT INTO announcements (id, title, content, category, is_published, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s
	`, announcementColumns)

	row := r.db.QueryRow(ctx, query,
		uuid.New(),
		req.Title,
		req.Content,
		req.Category,
		isPublished,
		req.PublishedAt,
	)

	created, err := scanAnnouncement(row)
	if err != nil {
		log.Printf("Error creating announcement: %v\n", err)
		return nil, fmt.Errorf("failed to create announcement: %w", err)
	}

	log.Printf("Announcement created successfully with ID: %s", created.ID)
	return created, nil
}

// Update modifies an existing announcement based on non-nil fields.
func (r *AnnouncementRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	var setClauses []string
	args := []interface{}{}
	argID := 1

	addClause := func(column string, value interface{}) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.Title != nil {
		addClause("title", *req.Title)
	}
	if req.Content != nil {
		addClause("content", *req.Content)
	}
	if req.Category != nil {
		addClause("category", *req.Category)
	}
	if req.IsPublished != nil {
		addClause("is_published", *req.IsPublished)
	}
	if req.PublishedAt != nil {
		addClause("published_at", *req.PublishedAt)
	}

	if len(setClauses) == 0 {
		log.Printf("Update called for announcement %s with no fields to change.", id)
		return nil, fmt.Errorf("no fields provided for update on announcement %s", id)
	}

	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`
		UPDATE announcements
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argID, announcementColumns)

	updated, err := scanAnnouncement(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("Announcement not found for update with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating announcement %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update announcement %s: %w", id, err)
	}

	return updated, nil
}

// Delete removes an announcement. Missing ids are a silent no-op.
func (r *AnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM announcements WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting announcement %s: %v\n", id, err)
		return fmt.Errorf("failed to delete announcement %s: %w", id, err)
	}

	if cmdTag.RowsAffected() == 0 {
		log.Printf("Delete for announcement %s matched no rows (no-op)\n", id)
	}
	return nil
}
