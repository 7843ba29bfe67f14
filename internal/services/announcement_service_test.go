package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"company-site-api/internal/models"
	"company-site-api/internal/storage"
	"company-site-api/internal/transport/dto"
)

// MockAnnouncementRepository is a mock type for storage.AnnouncementRepository
type MockAnnouncementRepository struct {
	mock.Mock
}

func (m *MockAnnouncementRepository) ListPublished(ctx context.Context) ([]models.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) ListAll(ctx context.Context) ([]models.Announcement, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, req *dto.CreateAnnouncementRequest) (*models.Announcement, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAnnouncementRequest) (*models.Announcement, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Announcement), args.Error(1)
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ storage.AnnouncementRepository = (*MockAnnouncementRepository)(nil)

func boolPtr(v bool) *bool { return &v }

func TestAnnouncementService_CreateStampsPublishedAt(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &announcementService{repo: mockRepo, now: func() time.Time { return fixed }}

	req := &dto.CreateAnnouncementRequest{
		Title:       "Launch",
		Content:     "We shipped",
		Category:    "news",
		IsPublished: boolPtr(true),
	}
	mockRepo.On("Create", mock.Anything, req).Return(&models.Announcement{ID: uuid.New()}, nil).Once()

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	// The service stamps the publish date before the repo sees the request.
	require.NotNil(t, req.PublishedAt)
	assert.True(t, req.PublishedAt.Equal(fixed))
	mockRepo.AssertExpectations(t)
}

func TestAnnouncementService_CreateKeepsExplicitDate(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	svc := NewAnnouncementService(mockRepo)

	explicit := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)
	req := &dto.CreateAnnouncementRequest{
		Title:       "Scheduled",
		Content:     "Later",
		Category:    "news",
		IsPublished: boolPtr(true),
		PublishedAt: &explicit,
	}
	mockRepo.On("Create", mock.Anything, req).Return(&models.Announcement{ID: uuid.New()}, nil).Once()

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, req.PublishedAt.Equal(explicit), "explicit dates are left alone")
	mockRepo.AssertExpectations(t)
}

func TestAnnouncementService_CreateUnpublishedNoStamp(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	svc := NewAnnouncementService(mockRepo)

	req := &dto.CreateAnnouncementRequest{Title: "Draft", Content: "wip", Category: "news"}
	mockRepo.On("Create", mock.Anything, req).Return(&models.Announcement{ID: uuid.New()}, nil).Once()

	_, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, req.PublishedAt)
	mockRepo.AssertExpectations(t)
}

func TestAnnouncementService_UpdateStampsOnPublish(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := &announcementService{repo: mockRepo, now: func() time.Time { return fixed }}

	id := uuid.New()
	req := &dto.UpdateAnnouncementRequest{IsPublished: boolPtr(true)}
	mockRepo.On("Update", mock.Anything, id, req).Return(&models.Announcement{ID: id}, nil).Once()

	_, err := svc.Update(context.Background(), id, req)
	require.NoError(t, err)
	require.NotNil(t, req.PublishedAt)
	assert.True(t, req.PublishedAt.Equal(fixed))
	mockRepo.AssertExpectations(t)
}

func TestAnnouncementService_UpdateNoFields(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	svc := NewAnnouncementService(mockRepo)

	_, err := svc.Update(context.Background(), uuid.New(), &dto.UpdateAnnouncementRequest{})
	assert.ErrorIs(t, err, ErrValidation)
	mockRepo.AssertNotCalled(t, "Update")
}

func TestAnnouncementService_UpdateNotFound(t *testing.T) {
	mockRepo := new(MockAnnouncementRepository)
	svc := NewAnnouncementService(mockRepo)

	id := uuid.New()
	req := &dto.UpdateAnnouncementRequest{Title: strPtr("x")}
	mockRepo.On("Update", mock.Anything, id, req).Return(nil, storage.ErrNotFound).Once()

	_, err := svc.Update(context.Background(), id, req)
	assert.ErrorIs(t, err, ErrNotFound)
	mockRepo.AssertExpectations(t)
}

func strPtr(v string) *string { return &v }
