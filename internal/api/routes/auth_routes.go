// internal/api/routes/auth_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"company-site-api/internal/api/handlers"
)

// RegisterAuthRoutes registers the admin account routes.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/user", authMiddleware, authHandler.GetCurrentUser)
	}
}
