package memory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

type userRepo struct {
	s *state
}

var _ storage.UserRepository = (*userRepo)(nil)

func (r *userRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.ID == id {
			out := user
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, user := range r.s.users {
		if user.Email != nil && *user.Email == email {
			out := user
			return &out, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (r *userRepo) Upsert(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	// Email uniqueness across other users, mirroring the postgres constraint.
	for _, user := range r.s.users {
		if user.ID == req.ID || req.Email == nil {
			continue
		}
		if user.Email != nil && *user.Email == *req.Email {
			return nil, storage.ErrDuplicateEmail
		}
	}

	now := time.Now()
	for i := range r.s.users {
		if r.s.users[i].ID != req.ID {
			continue
		}
		user := &r.s.users[i]
		if req.Email != nil {
			user.Email = req.Email
		}
		if req.FirstName != nil {
			user.FirstName = req.FirstName
		}
		if req.LastName != nil {
			user.LastName = req.LastName
		}
		if req.ProfileImageURL != nil {
			user.ProfileImageURL = req.ProfileImageURL
		}
		if req.PasswordHash != nil {
			user.PasswordHash = req.PasswordHash
		}
		user.UpdatedAt = now

		out := *user
		return &out, nil
	}

	user := models.User{
		ID:              req.ID,
		Email:           req.Email,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		ProfileImageURL: req.ProfileImageURL,
		PasswordHash:    req.PasswordHash,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	r.s.users = append(r.s.users, user)

	out := user
	return &out, nil
}
