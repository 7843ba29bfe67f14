// internal/api/handlers/admin.go
package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"company-site-api/internal/services"
)

// AdminHandler serves the small admin dashboard summary.
type AdminHandler struct {
	jobs          services.JobService
	applications  services.ApplicationService
	announcements services.AnnouncementService
	contact       services.ContactService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(jobs services.JobService, applications services.ApplicationService, announcements services.AnnouncementService, contact services.ContactService) *AdminHandler {
	return &AdminHandler{
		jobs:          jobs,
		applications:  applications,
		announcements: announcements,
		contact:       contact,
	}
}

// Summary godoc
// @Summary      Admin dashboard summary
// @Description  Returns simple counts of active jobs, applications, published announcements, and contact messages.
// @Tags         admin
// @Produce      json
// @Success      200 {object}  map[string]int "Counts"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/simple [get]
// @Security     BearerAuth
func (h *AdminHandler) Summary(c *gin.Context) {
	ctx := c.Request.Context()

	jobs, err := h.jobs.ListJobs(ctx)
	if err != nil {
		log.Printf("Error counting jobs for summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build summary"})
		return
	}
	apps, err := h.applications.ListApplications(ctx)
	if err != nil {
		log.Printf("Error counting applications for summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build summary"})
		return
	}
	announcements, err := h.announcements.ListPublished(ctx)
	if err != nil {
		log.Printf("Error counting announcements for summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build summary"})
		return
	}
	messages, err := h.contact.ListMessages(ctx)
	if err != nil {
		log.Printf("Error counting contact messages for summary: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"active_jobs":             len(jobs),
		"applications":            len(apps),
		"published_announcements": len(announcements),
		"contact_messages":        len(messages),
	})
}
