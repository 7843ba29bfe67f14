package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"company-site-api/internal/auth"
	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

type userService struct {
	repo       storage.UserRepository
	tokens     auth.TokenStore
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewUserService creates a new instance of UserService.
func NewUserService(repo storage.UserRepository, tokens auth.TokenStore, jwtSecret string, accessTTL, refreshTTL time.Duration) UserService {
	return &userService{
		repo:       repo,
		tokens:     tokens,
		jwtSecret:  jwtSecret,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("UserService: Error hashing password: %v", err)
		return nil, fmt.Errorf("internal error hashing password: %w", err)
	}
	hashStr := string(hash)

	user, err := s.repo.Upsert(ctx, &dto.UpsertUserRequest{
		ID:           uuid.New(),
		Email:        &req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: &hashStr,
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateEmail) || errors.Is(err, storage.ErrConflict) {
			return nil, fmt.Errorf("%w: %w", ErrConflict, err)
		}
		log.Printf("UserService: Error creating user: %v", err)
		return nil, fmt.Errorf("internal error creating user: %w", err)
	}
	return user, nil
}

func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*models.User, *dto.TokenPairResponse, error) {
	user, err := s.repo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			log.Printf("Login attempt failed for email %s: user not found", req.Email)
			return nil, nil, ErrInvalidCredentials
		}
		log.Printf("Error fetching user by email %s during login: %v", req.Email, err)
		return nil, nil, fmt.Errorf("internal error during login: %w", err)
	}

	if user.PasswordHash == nil {
		log.Printf("Login attempt failed for email %s: no password set", req.Email)
		return nil, nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		log.Printf("Login attempt failed for email %s: invalid password", req.Email)
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.issueTokenPair(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}

	// Every login refreshes the user's updated_at.
	if _, err := s.repo.Upsert(ctx, &dto.UpsertUserRequest{ID: user.ID}); err != nil {
		log.Printf("UserService: Error refreshing user %s on login: %v", user.ID, err)
	}

	return user, pair, nil
}

func (s *userService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenPairResponse, error) {
	userID, err := s.parseToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	valid, err := s.tokens.Verify(ctx, userID, refreshToken)
	if err != nil {
		log.Printf("UserService: Error verifying refresh token for %s: %v", userID, err)
		return nil, fmt.Errorf("internal error verifying refresh token: %w", err)
	}
	if !valid {
		return nil, ErrInvalidToken
	}

	// Rotate: the old refresh token dies with the new issue.
	return s.issueTokenPair(ctx, userID)
}

func (s *userService) Logout(ctx context.Context, refreshToken string) error {
	userID, err := s.parseToken(refreshToken)
	if err != nil {
		return ErrInvalidToken
	}
	if err := s.tokens.Revoke(ctx, userID); err != nil {
		log.Printf("UserService: Error revoking refresh token for %s: %v", userID, err)
		return fmt.Errorf("internal error revoking refresh token: %w", err)
	}
	return nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting user by ID")
	}
	return user, nil
}

func (s *userService) issueTokenPair(ctx context.Context, userID uuid.UUID) (*dto.TokenPairResponse, error) {
	access, err := s.signToken(userID, s.accessTTL)
	if err != nil {
		log.Printf("Error generating access token for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}
	refresh, err := s.signToken(userID, s.refreshTTL)
	if err != nil {
		log.Printf("Error generating refresh token for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	if err := s.tokens.Save(ctx, userID, refresh, s.refreshTTL); err != nil {
		log.Printf("Error storing refresh token for user %s: %v", userID, err)
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	return &dto.TokenPairResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *userService) signToken(userID uuid.UUID, ttl time.Duration) (string, error) {
	// The jti keeps tokens unique even when two are issued within the same
	// second, which matters for refresh rotation.
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        uuid.NewString(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *userService) parseToken(tokenString string) (uuid.UUID, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return uuid.Nil, ErrInvalidToken
	}
	return uuid.Parse(claims.Subject)
}
