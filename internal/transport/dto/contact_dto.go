// internal/transport/dto/contact_dto.go
package dto

// CreateContactMessageRequest defines the structure for a public contact form
// submission. Messages always start as unread.
type CreateContactMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// UpdateContactMessageStatusRequest defines the structure for an admin status
// change on a contact message.
type UpdateContactMessageStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=unread read replied"`
}
