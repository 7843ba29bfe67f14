// internal/api/routes/announcement_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"company-site-api/internal/api/handlers"
)

// RegisterAnnouncementRoutes registers the announcement routes. The public
// listing shows published items only; everything else is admin-gated.
func RegisterAnnouncementRoutes(
	rg *gin.RouterGroup,
	announcementHandler handlers.AnnouncementHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	announcements := rg.Group("/announcements")
	{
		announcements.GET("", announcementHandler.ListPublishedAnnouncements)            // Public
		announcements.POST("", authMiddleware, announcementHandler.CreateAnnouncement)   // Admin
		announcements.PUT("/:id", authMiddleware, announcementHandler.UpdateAnnouncement)   // Admin
		announcements.DELETE("/:id", authMiddleware, announcementHandler.DeleteAnnouncement) // Admin: hard delete
	}
}
