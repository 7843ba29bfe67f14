package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"company-site-api/internal/api/handlers"
	"company-site-api/internal/app"
	"company-site-api/internal/models"
	"company-site-api/internal/services"
	"company-site-api/internal/transport/dto"
)

// MockContactService is a mock type for services.ContactService
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) SubmitMessage(ctx context.Context, req *dto.CreateContactMessageRequest) (*models.ContactMessage, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) ListMessages(ctx context.Context) ([]models.ContactMessage, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ContactMessage), args.Error(1)
}

func (m *MockContactService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*models.ContactMessage, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ContactMessage), args.Error(1)
}

func (m *MockContactService) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

var _ services.ContactService = (*MockContactService)(nil)

func setupContactRouter() (*gin.Engine, *MockContactService) {
	gin.SetMode(gin.TestMode)
	mockService := new(MockContactService)
	handler := handlers.NewContactHandler(mockService, app.NewValidator())
	router := gin.New()
	router.POST("/contact", handler.SubmitContactMessage)
	router.GET("/admin/contact-messages", handler.ListContactMessages)
	router.PUT("/admin/contact-messages/:id/status", handler.UpdateContactMessageStatus)
	router.DELETE("/admin/contact-messages/:id", handler.DeleteContactMessage)
	return router, mockService
}

func TestContactHandler_SubmitMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		router, mockService := setupContactRouter()

		created := &models.ContactMessage{ID: uuid.New(), Status: models.ContactMessageStatusUnread}
		mockService.On("SubmitMessage", mock.Anything, mock.AnythingOfType("*dto.CreateContactMessageRequest")).
			Return(created, nil).Once()

		payload := map[string]string{
			"name":    "Visitor",
			"email":   "visitor@example.com",
			"subject": "Question",
			"message": "How do I apply?",
		}
		body, _ := json.Marshal(payload)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var msg models.ContactMessage
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &msg))
		assert.Equal(t, models.ContactMessageStatusUnread, msg.Status)
		mockService.AssertExpectations(t)
	})

	t.Run("Invalid Email", func(t *testing.T) {
		router, mockService := setupContactRouter()

		payload := map[string]string{
			"name":    "Visitor",
			"email":   "nope",
			"subject": "Question",
			"message": "Hello",
		}
		body, _ := json.Marshal(payload)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/contact", bytes.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)

		var resp errorBody
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.Contains(t, fieldNames(resp.Errors), "email")
		mockService.AssertNotCalled(t, "SubmitMessage")
	})
}

func TestContactHandler_UpdateStatus_InvalidEnum(t *testing.T) {
	router, mockService := setupContactRouter()

	body := []byte(`{"status": "spam"}`)

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPut, "/admin/contact-messages/"+uuid.New().String()+"/status", bytes.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	mockService.AssertNotCalled(t, "UpdateStatus")
}

func TestContactHandler_DeleteMessage(t *testing.T) {
	router, mockService := setupContactRouter()

	id := uuid.New()
	mockService.On("DeleteMessage", mock.Anything, id).Return(nil).Once()

	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodDelete, "/admin/contact-messages/"+id.String(), nil)
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	mockService.AssertExpectations(t)
}
