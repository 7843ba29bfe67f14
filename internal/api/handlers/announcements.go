// internal/api/handlers/announcements.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"company-site-api/internal/services"
	"company-site-api/internal/transport/dto"
)

// AnnouncementHandler holds dependencies for announcement operations.
type AnnouncementHandler struct {
	service   services.AnnouncementService
	validator *validator.Validate
}

// NewAnnouncementHandler creates a new AnnouncementHandler.
func NewAnnouncementHandler(service services.AnnouncementService, validate *validator.Validate) *AnnouncementHandler {
	return &AnnouncementHandler{
		service:   service,
		validator: validate,
	}
}

// ListPublishedAnnouncements godoc
// @Summary      List published announcements
// @Description  Retrieves published announcements, most recently published first. Items without a publish date come last.
// @Tags         announcements
// @Produce      json
// @Success      200 {array}   models.Announcement "Successfully retrieved announcements"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /announcements [get]
func (h *AnnouncementHandler) ListPublishedAnnouncements(c *gin.Context) {
	items, err := h.service.ListPublished(c.Request.Context())
	if err != nil {
		log.Printf("Error listing published announcements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve announcements"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAllAnnouncements godoc
// @Summary      List all announcements
// @Description  Retrieves every announcement including drafts.
// @Tags         announcements
// @Produce      json
// @Success      200 {array}   models.Announcement "Successfully retrieved announcements"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/announcements [get]
// @Security     BearerAuth
func (h *AnnouncementHandler) ListAllAnnouncements(c *gin.Context) {
	items, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		log.Printf("Error listing announcements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve announcements"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// CreateAnnouncement godoc
// @Summary      Create an announcement
// @Description  Adds a new announcement. Publishing without a date stamps the current time.
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        announcement body      dto.CreateAnnouncementRequest true  "Announcement details"
// @Success      201 {object}  models.Announcement "Announcement created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /announcements [post]
// @Security     BearerAuth
func (h *AnnouncementHandler) CreateAnnouncement(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	item, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating announcement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create announcement"})
		return
	}

	c.JSON(http.StatusCreated, item)
}

// UpdateAnnouncement godoc
// @Summary      Update an announcement
// @Description  Partially updates an announcement. Only the provided fields change.
// @Tags         announcements
// @Accept       json
// @Produce      json
// @Param        id           path      string                        true  "Announcement ID" Format(uuid)
// @Param        announcement body      dto.UpdateAnnouncementRequest true  "Fields to update"
// @Success      200 {object}  models.Announcement "Announcement updated successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input or no fields"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Announcement Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /announcements/{id} [put]
// @Security     BearerAuth
func (h *AnnouncementHandler) UpdateAnnouncement(c *gin.Context) {
	idStr := c.Param("id")
	announcementID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid announcement ID format"})
		return
	}

	var req dto.UpdateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	item, err := h.service.Update(c.Request.Context(), announcementID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Announcement not found"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No update fields provided"})
		} else {
			log.Printf("Error updating announcement %s: %v", announcementID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update announcement"})
		}
		return
	}

	c.JSON(http.StatusOK, item)
}

// DeleteAnnouncement godoc
// @Summary      Delete an announcement
// @Description  Permanently removes an announcement. Deleting a missing one is a no-op.
// @Tags         announcements
// @Produce      json
// @Param        id path      string true  "Announcement ID" Format(uuid)
// @Success      204 {object}  nil "Announcement deleted successfully"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /announcements/{id} [delete]
// @Security     BearerAuth
func (h *AnnouncementHandler) DeleteAnnouncement(c *gin.Context) {
	idStr := c.Param("id")
	announcementID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid announcement ID format"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), announcementID); err != nil {
		log.Printf("Error deleting announcement %s: %v", announcementID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete announcement"})
		return
	}

	c.Status(http.StatusNoContent)
}
