// internal/transport/dto/application_dto.go
package dto

import "github.com/google/uuid"

// CreateJobApplicationRequest defines the structure for a public application
// submission. JobID comes from the URL path on the nested route and from the
// body on POST /applications; the handler reconciles the two before
// validation. Any client-supplied status is ignored - applications always
// start as pending.
type CreateJobApplicationRequest struct {
	JobID        uuid.UUID `json:"job_id" validate:"required"`
	FirstName    string    `json:"first_name" validate:"required"`
	LastName     string    `json:"last_name" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	PortfolioURL *string   `json:"portfolio_url,omitempty" validate:"omitempty,url"`
	CoverLetter  *string   `json:"cover_letter,omitempty"`
	ResumeURL    *string   `json:"resume_url,omitempty" validate:"omitempty,url"`
}

// UpdateApplicationStatusRequest defines the structure for an admin status
// change on an application.
type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending reviewing accepted rejected"`
}
