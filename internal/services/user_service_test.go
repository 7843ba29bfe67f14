package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-site-api/internal/auth"
	"company-site-api/internal/storage/memory"
	"company-site-api/internal/transport/dto"
)

const testJWTSecret = "test-secret"

func newTestUserService() UserService {
	store := memory.NewStore()
	tokens := auth.NewMemoryTokenStore()
	return NewUserService(store.Users, tokens, testJWTSecret, 15*time.Minute, time.Hour)
}

func TestUserService_RegisterAndLogin(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	user, err := svc.Register(ctx, &dto.RegisterRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotNil(t, user.PasswordHash)
	assert.NotEqual(t, "correct horse", *user.PasswordHash, "password is stored hashed")

	loggedIn, tokens, err := svc.Login(ctx, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)
}

func TestUserService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "admin@example.com", Password: "password1"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &dto.RegisterRequest{Email: "admin@example.com", Password: "password2"})
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserService_LoginInvalidCredentials(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "admin@example.com", Password: "correct horse"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "whatever"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUserService_RefreshRotatesToken(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "admin@example.com", Password: "correct horse"})
	require.NoError(t, err)
	_, tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "correct horse"})
	require.NoError(t, err)

	rotated, err := svc.Refresh(ctx, tokens.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEmpty(t, rotated.RefreshToken)

	// The old refresh token died with the rotation.
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// The new one still works.
	_, err = svc.Refresh(ctx, rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestUserService_RefreshGarbageToken(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.Refresh(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserService_Logout(t *testing.T) {
	svc := newTestUserService()
	ctx := context.Background()

	_, err := svc.Register(ctx, &dto.RegisterRequest{Email: "admin@example.com", Password: "correct horse"})
	require.NoError(t, err)
	_, tokens, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@example.com", Password: "correct horse"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, tokens.RefreshToken))

	// A revoked refresh token cannot be rotated anymore.
	_, err = svc.Refresh(ctx, tokens.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestUserService_GetByIDNotFound(t *testing.T) {
	svc := newTestUserService()

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
