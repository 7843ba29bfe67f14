// internal/api/routes/admin_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"company-site-api/internal/api/handlers"
)

// RegisterAdminRoutes registers the admin-only management routes. The whole
// group sits behind the auth middleware.
func RegisterAdminRoutes(
	rg *gin.RouterGroup,
	adminHandler handlers.AdminHandlerInterface,
	announcementHandler handlers.AnnouncementHandlerInterface,
	contactHandler handlers.ContactHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	admin := rg.Group("/admin")
	admin.Use(authMiddleware)
	{
		admin.GET("/simple", adminHandler.Summary)
		admin.GET("/announcements", announcementHandler.ListAllAnnouncements) // Includes drafts
		admin.GET("/contact-messages", contactHandler.ListContactMessages)
		admin.PUT("/contact-messages/:id/status", contactHandler.UpdateContactMessageStatus)
		admin.DELETE("/contact-messages/:id", contactHandler.DeleteContactMessage)
	}
}
