package dto

// FieldError is a single machine-readable validation failure: the offending
// field's JSON path and a human-readable message.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
