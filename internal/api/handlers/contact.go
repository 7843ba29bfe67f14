// internal/api/handlers/contact.go
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

// ContactHandler holds dependencies for contact message operations.
type ContactHandler struct {
	service   services.ContactService
	validator *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service services.ContactService, validate *validator.Validate) *ContactHandler {
	return &ContactHandler{
		service:   service,
		validator: validate,
	}
}

// SubmitContactMessage godoc
// @Summary      Submit a contact message
// @Description  Creates a contact message from the public form. Status always starts as unread.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        message body      dto.CreateContactMessageRequest true  "Message details"
// @Success      201 {object}  models.ContactMessage "Message created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /contact [post]
func (h *ContactHandler) SubmitContactMessage(c *gin.Context) {
	var req dto.CreateContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	msg, err := h.service.SubmitMessage(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating contact message: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create contact message"})
		return
	}

	c.JSON(http.StatusCreated, msg)
}

// ListContactMessages godoc
// @Summary      List contact messages
// @Description  Retrieves every contact message, newest first.
// @Tags         contact
// @Produce      json
// @Success      200 {array}   models.ContactMessage "Successfully retrieved messages"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/contact-messages [get]
// @Security     BearerAuth
func (h *ContactHandler) ListContactMessages(c *gin.Context) {
	msgs, err := h.service.ListMessages(c.Request.Context())
	if err != nil {
		log.Printf("Error listing contact messages: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve contact messages"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}

// UpdateContactMessageStatus godoc
// @Summary      Update a contact message's status
// @Description  Moves a contact message to one of unread, read, replied.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        id     path      string                                true  "Message ID" Format(uuid)
// @Param        status body      dto.UpdateContactMessageStatusRequest true  "New status"
// @Success      200 {object}  models.ContactMessage "Message updated successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input or status"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Message Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/contact-messages/{id}/status [put]
// @Security     BearerAuth
func (h *ContactHandler) UpdateContactMessageStatus(c *gin.Context) {
	idStr := c.Param("id")
	messageID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message ID format"})
		return
	}

	var req dto.UpdateContactMessageStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	msg, err := h.service.UpdateStatus(c.Request.Context(), messageID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Contact message not found"})
		} else if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact message status"})
		} else {
			log.Printf("Error updating contact message status %s: %v", messageID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update contact message status"})
		}
		return
	}

	c.JSON(http.StatusOK, msg)
}

// DeleteContactMessage godoc
// @Summary      Delete a contact message
// @Description  Permanently removes a contact message. Deleting a missing one is a no-op.
// @Tags         contact
// @Produce      json
// @Param        id path      string true  "Message ID" Format(uuid)
// @Success      204 {object}  nil "Message deleted successfully"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /admin/contact-messages/{id} [delete]
// @Security     BearerAuth
func (h *ContactHandler) DeleteContactMessage(c *gin.Context) {
	idStr := c.Param("id")
	messageID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid message ID format"})
		return
	}

	if err := h.service.DeleteMessage(c.Request.Context(), messageID); err != nil {
		log.Printf("Error deleting contact message %s: %v", messageID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete contact message"})
		return
	}

	c.Status(http.StatusNoContent)
}
