// internal/api/handlers/auth.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"company-site-api/internal/api/middleware"
	"company-site-api/internal/services"
	"company-site-api/internal/transport/dto"
)

// AuthHandler holds dependencies for admin account operations.
type AuthHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserService, validate *validator.Validate) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validate,
	}
}

// Register godoc
// @Summary      Register an admin account
// @Description  Creates an admin user with email and password.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.RegisterRequest true  "Account details"
// @Success      201 {object}  dto.UserResponse "Account created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      409 {object}  map[string]string "Conflict - Email already registered"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	user, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"message": "A user with this email already exists"})
		} else {
			log.Printf("Error registering user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to register user"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.MapUserToResponse(user))
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and issues an access/refresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body      dto.LoginRequest true  "Login credentials"
// @Success      200 {object}  map[string]interface{} "User and token pair"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Invalid credentials"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	user, tokens, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
		} else {
			log.Printf("Error logging in user: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log in"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":   dto.MapUserToResponse(user),
		"tokens": tokens,
	})
}

// Refresh godoc
// @Summary      Refresh tokens
// @Description  Rotates the refresh token and issues a fresh token pair.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body      dto.RefreshRequest true  "Refresh token"
// @Success      200 {object}  dto.TokenPairResponse "New token pair"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Invalid or expired refresh token"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	tokens, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired refresh token"})
		} else {
			log.Printf("Error refreshing tokens: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to refresh tokens"})
		}
		return
	}

	c.JSON(http.StatusOK, tokens)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the refresh token so it can no longer be rotated.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        token body      dto.LogoutRequest true  "Refresh token to revoke"
// @Success      204 {object}  nil "Logged out"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Invalid token"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	if err := h.service.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		} else {
			log.Printf("Error logging out: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to log out"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCurrentUser godoc
// @Summary      Get the authenticated user
// @Description  Returns the account behind the presented access token.
// @Tags         auth
// @Produce      json
// @Success      200 {object}  dto.UserResponse "Current user"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/user [get]
// @Security     BearerAuth
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	userID, err := middleware.GetUserIDFromContext(c)
	if err != nil {
		log.Printf("Error getting user ID from context: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
		} else {
			log.Printf("Error fetching user %s: %v", userID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve user"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.MapUserToResponse(user))
}
