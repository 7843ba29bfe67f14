// internal/api/routes/application_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"company-site-api/internal/api/handlers"
)

// RegisterApplicationRoutes registers the flat application routes. Submission
// is public; listing and status changes require authentication.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	applications := rg.Group("/applications")
	{
		applications.POST("", applicationHandler.SubmitApplication)                              // Public: apply with job_id in body
		applications.GET("", authMiddleware, applicationHandler.ListApplications)                // Admin: all, with job titles
		applications.PUT("/:id/status", authMiddleware, applicationHandler.UpdateApplicationStatus) // Admin
	}
}
