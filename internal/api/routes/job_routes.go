// internal/api/routes/job_routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"company-site-api/internal/api/handlers"
)

// RegisterJobRoutes registers all routes related to job postings. Reads and
// application submission are public; mutations require authentication.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	applicationHandler handlers.ApplicationHandlerInterface,
	authMiddleware gin.HandlerFunc,
) {
	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)                                                    // Public: active postings
		jobs.GET("/:id", jobHandler.GetJobByID)                                              // Public: single posting
		jobs.POST("/:id/applications", applicationHandler.SubmitApplicationForJob)           // Public: apply via nested route
		jobs.POST("", authMiddleware, jobHandler.CreateJob)                                  // Admin
		jobs.PUT("/:id", authMiddleware, jobHandler.UpdateJob)                               // Admin
		jobs.DELETE("/:id", authMiddleware, jobHandler.DeleteJob)                            // Admin: soft delete
		jobs.GET("/:id/applications", authMiddleware, applicationHandler.ListApplicationsForJob) // Admin
	}
}
