package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"company-site-api/internal/transport/dto"
)

// FormatValidationErrors converts validator failures into field/message
// descriptors so clients can attach errors to the offending inputs.
func FormatValidationErrors(err error) []dto.FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []dto.FieldError{{Field: "request", Message: err.Error()}}
	}

	fieldErrors := make([]dto.FieldError, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		fieldName := fieldError.Field()
		message := fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag())
		switch fieldError.Tag() {
		case "required":
			message = fmt.Sprintf("Field '%s' is required", fieldName)
		case "email":
			message = fmt.Sprintf("Field '%s' must be a valid email address", fieldName)
		case "url":
			message = fmt.Sprintf("Field '%s' must be a valid URL", fieldName)
		case "min":
			message = fmt.Sprintf("Field '%s' must have at least %s characters or elements", fieldName, fieldError.Param())
		case "max":
			message = fmt.Sprintf("Field '%s' must have at most %s characters or elements", fieldName, fieldError.Param())
		case "oneof":
			message = fmt.Sprintf("Field '%s' must be one of: %s", fieldName, fieldError.Param())
		case "gte":
			message = fmt.Sprintf("Field '%s' must be %s or greater", fieldName, fieldError.Param())
		case "uuid":
			message = fmt.Sprintf("Field '%s' must be a valid UUID", fieldName)
		}
		fieldErrors = append(fieldErrors, dto.FieldError{Field: fieldName, Message: message})
	}
	return fieldErrors
}
