package routes_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-site-api/config"
	"company-site-api/internal/api/routes"
	"company-site-api/internal/app"
	"company-site-api/internal/auth"
	"company-site-api/internal/models"
	"company-site-api/internal/storage/memory"
)

// setupTestApp wires the full route table onto the in-memory adapters, the
// same composition main performs when nothing external is configured.
func setupTestApp(t *testing.T, seed bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	if seed {
		require.NoError(t, memory.Seed(context.Background(), store))
	}

	application := &app.Application{
		Config: &config.Config{
			JWT: config.JWTConfig{
				Secret:     "test-secret",
				AccessTTL:  15 * time.Minute,
				RefreshTTL: time.Hour,
			},
		},
		Store:      store,
		TokenStore: auth.NewMemoryTokenStore(),
		Validator:  app.NewValidator(),
	}

	router := gin.New()
	routes.RegisterRoutes(router, application)
	return router
}

func TestPublicRoutes(t *testing.T) {
	router := setupTestApp(t, true)

	t.Run("List Jobs", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/jobs", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var jobs []models.Job
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &jobs))
		assert.NotEmpty(t, jobs)
		for _, job := range jobs {
			assert.True(t, job.IsActive)
		}
	})

	t.Run("List Announcements Published Only", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/api/announcements", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var items []models.Announcement
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &items))
		for _, item := range items {
			assert.True(t, item.IsPublished)
		}
	})

	t.Run("Submit Contact Message", func(t *testing.T) {
		payload := map[string]string{
			"name":    "Visitor",
			"email":   "visitor@example.com",
			"subject": "Hello",
			"message": "Just saying hi",
		}
		body, _ := json.Marshal(payload)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
		request.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	t.Run("Health", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/health", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})
}

func TestAdminRoutesRequireAuth(t *testing.T) {
	router := setupTestApp(t, false)

	protected := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/jobs"},
		{http.MethodDelete, "/api/jobs/" + "00000000-0000-0000-0000-000000000001"},
		{http.MethodGet, "/api/applications"},
		{http.MethodGet, "/api/admin/simple"},
		{http.MethodGet, "/api/admin/announcements"},
		{http.MethodGet, "/api/admin/contact-messages"},
		{http.MethodGet, "/api/auth/user"},
	}

	for _, route := range protected {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(route.method, route.path, bytes.NewReader([]byte(`{}`)))
		router.ServeHTTP(recorder, request)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, "%s %s should require auth", route.method, route.path)
	}
}

func TestAuthFlowEndToEnd(t *testing.T) {
	router := setupTestApp(t, false)

	// Register
	registerBody, _ := json.Marshal(map[string]string{
		"email":    "admin@example.com",
		"password": "a-strong-password",
	})
	recorder := httptest.NewRecorder()
	request, _ := http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(registerBody))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	// Login
	recorder = httptest.NewRecorder()
	request, _ = http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(registerBody))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var loginResp struct {
		Tokens struct {
			AccessToken  string `json:"access_token"`
			RefreshToken string `json:"refresh_token"`
		} `json:"tokens"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Tokens.AccessToken)

	// The access token opens the admin surface.
	recorder = httptest.NewRecorder()
	request, _ = http.NewRequest(http.MethodGet, "/api/admin/simple", nil)
	request.Header.Set("Authorization", "Bearer "+loginResp.Tokens.AccessToken)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)

	// And resolves the current user.
	recorder = httptest.NewRecorder()
	request, _ = http.NewRequest(http.MethodGet, "/api/auth/user", nil)
	request.Header.Set("Authorization", "Bearer "+loginResp.Tokens.AccessToken)
	router.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "admin@example.com")

	// Create a job through the admin API, then see it publicly.
	jobBody, _ := json.Marshal(map[string]interface{}{
		"title":        "SRE",
		"department":   "Engineering",
		"type":         "full-time",
		"location":     "Remote",
		"description":  "Keep it running",
		"requirements": "Go, Linux",
		"skills":       []string{"go", "linux"},
	})
	recorder = httptest.NewRecorder()
	request, _ = http.NewRequest(http.MethodPost, "/api/jobs", bytes.NewReader(jobBody))
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Authorization", "Bearer "+loginResp.Tokens.AccessToken)
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	request, _ = http.NewRequest(http.MethodGet, "/api/jobs", nil)
	router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "SRE")
}
