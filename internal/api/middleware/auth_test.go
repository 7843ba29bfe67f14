package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"company-site-api/internal/api/middleware"
)

const testSecret = "test-secret"

func generateTestToken(userID uuid.UUID, secret string, expiration time.Duration) (string, error) {
	expirationTime := time.Now().Add(expiration)
	claims := &jwt.RegisteredClaims{
		Subject:   userID.String(),
		ExpiresAt: jwt.NewNumericDate(expirationTime),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func setupProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", middleware.JWTAuthMiddleware(testSecret), func(c *gin.Context) {
		userID, err := middleware.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.String()})
	})
	return router
}

func TestJWTAuthMiddleware(t *testing.T) {
	router := setupProtectedRouter()

	t.Run("Valid Token", func(t *testing.T) {
		userID := uuid.New()
		token, err := generateTestToken(userID, testSecret, time.Minute)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), userID.String())
	})

	t.Run("Missing Header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Malformed Header", func(t *testing.T) {
		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Token abc")
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("Expired Token", func(t *testing.T) {
		token, err := generateTestToken(uuid.New(), testSecret, -time.Minute)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "expired")
	})

	t.Run("Wrong Secret", func(t *testing.T) {
		token, err := generateTestToken(uuid.New(), "other-secret", time.Minute)
		require.NoError(t, err)

		recorder := httptest.NewRecorder()
		request, _ := http.NewRequest(http.MethodGet, "/protected", nil)
		request.Header.Set("Authorization", "Bearer "+token)
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}
