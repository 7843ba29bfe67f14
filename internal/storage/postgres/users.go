// internal/storage/postgres/users.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

const userColumns = `id, email, first_name, last_name, profile_image_url,
	password_hash, created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.ProfileImageURL,
		&user.PasswordHash,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByID retrieves a single user by ID.
func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Printf("User not found with ID: %s\n", id)
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	return user, nil
}

// GetByEmail retrieves a single user by email (including password hash, for
// the login flow).
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE email = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by email %s: %v\n", email, err)
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return user, nil
}

// Upsert inserts a user keyed by id, or merges the non-nil fields into the
// existing record. updated_at is refreshed on both paths.
func (r *UserRepo) Upsert(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, error) {
	query := fmt.Sprintf(`
		INSERT INTO users (id, email, first_name, last_name, profile_image_url, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			email             = COALESCE(EXCLUDED.email, users.email),
			first_name        = COALESCE(EXCLUDED.first_name, users.first_name),
			last_name         = COALESCE(EXCLUDED.last_name, users.last_name),
			profile_image_url = COALESCE(EXCLUDED.profile_image_url, users.profile_image_url),
			password_hash     = COALESCE(EXCLUDED.password_hash, users.password_hash),
			updated_at        = NOW()
		RETURNING %s
	`, userColumns)

	row := r.db.QueryRow(ctx, query,
		req.ID,
		req.Email,
		req.FirstName,
		req.LastName,
		req.ProfileImageURL,
		req.PasswordHash,
	)

	user, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation (email)
			log.Printf("Error upserting user %s: duplicate email: %v\n", req.ID, err)
			return nil, fmt.Errorf("failed to upsert user: %w", storage.ErrDuplicateEmail)
		}
		log.Printf("Error upserting user %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to upsert user %s: %w", req.ID, err)
	}

	return user, nil
}
