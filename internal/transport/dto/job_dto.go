// internal/transport/dto/job_dto.go
package dto

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
type CreateJobRequest struct {
	Title        string   `json:"title" validate:"required"`
	Department   string   `json:"department" validate:"required"`
	Type         string   `json:"type" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	SalaryMin    *int     `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax    *int     `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Description  string   `json:"description" validate:"required"`
	Requirements string   `json:"requirements" validate:"required"`
	Benefits     *string  `json:"benefits,omitempty"`
	Skills       []string `json:"skills" validate:"required,min=1,dive,required"`
	IsActive     *bool    `json:"is_active,omitempty"` // defaults to true when omitted
}

// UpdateJobRequest defines the structure for a partial job update.
// Nil fields are left untouched.
type UpdateJobRequest struct {
	Title        *string  `json:"title,omitempty" validate:"omitempty,min=1"`
	Department   *string  `json:"department,omitempty" validate:"omitempty,min=1"`
	Type         *string  `json:"type,omitempty" validate:"omitempty,min=1"`
	Location     *string  `json:"location,omitempty" validate:"omitempty,min=1"`
	SalaryMin    *int     `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax    *int     `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,min=1"`
	Requirements *string  `json:"requirements,omitempty" validate:"omitempty,min=1"`
	Benefits     *string  `json:"benefits,omitempty"`
	Skills       []string `json:"skills,omitempty" validate:"omitempty,min=1,dive,required"`
	IsActive     *bool    `json:"is_active,omitempty"`
}

// HasChanges reports whether the update names at least one field.
func (r *UpdateJobRequest) HasChanges() bool {
	return r.Title != nil || r.Department != nil || r.Type != nil ||
		r.Location != nil || r.SalaryMin != nil || r.SalaryMax != nil ||
		r.Description != nil || r.Requirements != nil || r.Benefits != nil ||
		r.Skills != nil || r.IsActive != nil
}
