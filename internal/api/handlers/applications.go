// internal/api/handlers/applications.go
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

// ApplicationHandler holds dependencies for job application operations.
type ApplicationHandler struct {
	service   services.ApplicationService
	validator *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{
		service:   service,
		validator: validate,
	}
}

// SubmitApplication godoc
// @Summary      Submit a job application
// @Description  Creates an application for the job named in the body. Status always starts as pending.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        application body      dto.CreateJobApplicationRequest true  "Application details"
// @Success      201 {object}  models.JobApplication "Application created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications [post]
func (h *ApplicationHandler) SubmitApplication(c *gin.Context) {
	var req dto.CreateJobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	h.createApplication(c, &req)
}

// SubmitApplicationForJob godoc
// @Summary      Submit an application for a specific job
// @Description  Creates an application for the job in the URL. Any job_id in the body is ignored in favor of the path.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id          path      string                          true  "Job ID" Format(uuid)
// @Param        application body      dto.CreateJobApplicationRequest true  "Application details (job_id ignored)"
// @Success      201 {object}  models.JobApplication "Application created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [post]
func (h *ApplicationHandler) SubmitApplicationForJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	var req dto.CreateJobApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}

	// The path wins over whatever the body says.
	req.JobID = jobID
	h.createApplication(c, &req)
}

func (h *ApplicationHandler) createApplication(c *gin.Context, req *dto.CreateJobApplicationRequest) {
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.SubmitApplication(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusConflict, gin.H{"message": "Invalid job reference"})
		} else {
			log.Printf("Error creating application for job %s: %v", req.JobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create application"})
		}
		return
	}

	c.JSON(http.StatusCreated, app)
}

// ListApplications godoc
// @Summary      List all job applications
// @Description  Retrieves every application joined with its job's title, newest first.
// @Tags         applications
// @Produce      json
// @Success      200 {array}   models.ApplicationWithJobTitle "Successfully retrieved applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.service.ListApplications(c.Request.Context())
	if err != nil {
		log.Printf("Error listing applications: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// ListApplicationsForJob godoc
// @Summary      List applications for a job
// @Description  Retrieves the applications submitted against a single job posting.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {array}   models.JobApplication "Successfully retrieved applications"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListApplicationsForJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	apps, err := h.service.ListApplicationsForJob(c.Request.Context(), jobID)
	if err != nil {
		log.Printf("Error listing applications for job %s: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve applications"})
		return
	}
	c.JSON(http.StatusOK, apps)
}

// UpdateApplicationStatus godoc
// @Summary      Update an application's status
// @Description  Moves an application to one of pending, reviewing, accepted, rejected.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id     path      string                             true  "Application ID" Format(uuid)
// @Param        status body      dto.UpdateApplicationStatusRequest true  "New status"
// @Success      200 {object}  models.JobApplication "Application updated successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input or status"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateApplicationStatus(c *gin.Context) {
	idStr := c.Param("id")
	appID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application ID format"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	app, err := h.service.UpdateStatus(c.Request.Context(), appID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else if errors.Is(err, services.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid application status"})
		} else {
			log.Printf("Error updating application status %s: %v", appID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application status"})
		}
		return
	}

	c.JSON(http.StatusOK, app)
}
