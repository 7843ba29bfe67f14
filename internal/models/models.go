package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// --- Application Status Enum ---
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusReviewing ApplicationStatus = "reviewing"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
)

// Valid reports whether the status is one of the four accepted values.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case ApplicationStatusPending, ApplicationStatusReviewing, ApplicationStatusAccepted, ApplicationStatusRejected:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for ApplicationStatus
func (s *ApplicationStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ApplicationStatus: value is not string or []byte")
		}
	}
	v := ApplicationStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ApplicationStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ApplicationStatus
func (s ApplicationStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// --- Contact Message Status Enum ---
type ContactMessageStatus string

const (
	ContactMessageStatusUnread  ContactMessageStatus = "unread"
	ContactMessageStatusRead    ContactMessageStatus = "read"
	ContactMessageStatusReplied ContactMessageStatus = "replied"
)

// Valid reports whether the status is one of the three accepted values.
func (s ContactMessageStatus) Valid() bool {
	switch s {
	case ContactMessageStatusUnread, ContactMessageStatusRead, ContactMessageStatusReplied:
		return true
	}
	return false
}

// Scan implements the sql.Scanner interface for ContactMessageStatus
func (s *ContactMessageStatus) Scan(value interface{}) error {
	strVal, ok := value.(string)
	if !ok {
		byteVal, ok := value.([]byte)
		if ok {
			strVal = string(byteVal)
		} else {
			return fmt.Errorf("failed to scan ContactMessageStatus: value is not string or []byte")
		}
	}
	v := ContactMessageStatus(strVal)
	if !v.Valid() {
		return fmt.Errorf("invalid ContactMessageStatus value: %s", strVal)
	}
	*s = v
	return nil
}

// Value implements the driver.Valuer interface for ContactMessageStatus
func (s ContactMessageStatus) Value() (driver.Value, error) {
	return string(s), nil
}

// User represents an admin user. Optional profile fields come from the
// auth flow and are merged on every login (upsert semantics).
type User struct {
	ID              uuid.UUID `json:"id" db:"id"`
	Email           *string   `json:"email,omitempty" db:"email"`
	FirstName       *string   `json:"first_name,omitempty" db:"first_name"`
	LastName        *string   `json:"last_name,omitempty" db:"last_name"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty" db:"profile_image_url"`
	PasswordHash    *string   `json:"-" db:"password_hash"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// Job represents a job posting on the careers page. Inactive jobs are hidden
// from public listings but never erased (soft delete), so application history
// stays intact.
type Job struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Title        string    `json:"title" db:"title"`
	Department   string    `json:"department" db:"department"`
	Type         string    `json:"type" db:"type"` // full-time, part-time, contract
	Location     string    `json:"location" db:"location"`
	SalaryMin    *int      `json:"salary_min,omitempty" db:"salary_min"`
	SalaryMax    *int      `json:"salary_max,omitempty" db:"salary_max"`
	Description  string    `json:"description" db:"description"`
	Requirements string    `json:"requirements" db:"requirements"`
	Benefits     *string   `json:"benefits,omitempty" db:"benefits"`
	Skills       []string  `json:"skills" db:"skills"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// JobApplication represents a public submission against a job posting.
type JobApplication struct {
	ID           uuid.UUID         `json:"id" db:"id"`
	JobID        uuid.UUID         `json:"job_id" db:"job_id"`
	FirstName    string            `json:"first_name" db:"first_name"`
	LastName     string            `json:"last_name" db:"last_name"`
	Email        string            `json:"email" db:"email"`
	PortfolioURL *string           `json:"portfolio_url,omitempty" db:"portfolio_url"`
	CoverLetter  *string           `json:"cover_letter,omitempty" db:"cover_letter"`
	ResumeURL    *string           `json:"resume_url,omitempty" db:"resume_url"`
	Status       ApplicationStatus `json:"status" db:"status"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}

// ApplicationWithJobTitle is a JobApplication joined with its job's title,
// used by the admin application listing.
type ApplicationWithJobTitle struct {
	JobApplication
	JobTitle string `json:"job_title" db:"job_title"`
}

// Announcement represents a company news item.
type Announcement struct {
	ID          uuid.UUID  `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Content     string     `json:"content" db:"content"`
	Category    string     `json:"category" db:"category"` // product-update, partnership, team-news, etc.
	IsPublished bool       `json:"is_published" db:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty" db:"published_at"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}

// ContactMessage represents a message sent through the public contact form.
type ContactMessage struct {
	ID        uuid.UUID            `json:"id" db:"id"`
	Name      string               `json:"name" db:"name"`
	Email     string               `json:"email" db:"email"`
	Subject   string               `json:"subject" db:"subject"`
	Message   string               `json:"message" db:"message"`
	Status    ContactMessageStatus `json:"status" db:"status"`
	CreatedAt time.Time            `json:"created_at" db:"created_at"`
	UpdatedAt time.Time            `json:"updated_at" db:"updated_at"`
}
