// internal/api/handlers/jobs.go
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

// JobHandler holds dependencies for job posting operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{
		service:   service,
		validator: validate,
	}
}

// ListJobs godoc
// @Summary      List active job postings
// @Description  Retrieves all active job postings, newest first. Soft-deleted postings are excluded.
// @Tags         jobs
// @Produce      json
// @Success      200 {array}   models.Job "Successfully retrieved jobs"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context())
	if err != nil {
		log.Printf("Error listing jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJobByID godoc
// @Summary      Get a job posting by ID
// @Description  Retrieves a single job posting, including inactive ones.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  models.Job "Successfully retrieved job"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJobByID(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	job, err := h.service.GetJob(c.Request.Context(), jobID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else {
			log.Printf("Error fetching job by ID %s: %v", idStr, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve job"})
		}
		return
	}
	c.JSON(http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Create a new job posting
// @Description  Adds a new job posting. Skills must contain at least one entry.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      201 {object}  models.Job "Job created successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dto.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	createdJob, err := h.service.CreateJob(c.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating job: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		return
	}

	c.JSON(http.StatusCreated, createdJob)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Partially updates a job posting. Only the provided fields change.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id  path      string               true  "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true  "Fields to update"
// @Success      200 {object}  models.Job "Job updated successfully"
// @Failure      400 {object}  map[string]interface{} "Bad Request - Invalid input or no fields"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	var req dto.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body: " + err.Error()})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Validation failed", "errors": FormatValidationErrors(err)})
		return
	}

	updatedJob, err := h.service.UpdateJob(c.Request.Context(), jobID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "No update fields provided"})
		} else {
			log.Printf("Error updating job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, updatedJob)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Soft-deletes a job posting by marking it inactive. Deleting an already inactive or missing posting is a no-op.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      204 {object}  nil "Job deleted successfully"
// @Failure      400 {object}  map[string]string "Invalid ID format"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	idStr := c.Param("id")
	jobID, err := uuid.Parse(idStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid job ID format"})
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), jobID); err != nil {
		log.Printf("Error deleting job %s: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job"})
		return
	}

	c.Status(http.StatusNoContent)
}
