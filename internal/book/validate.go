package book

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks the required fields. Both repository implementations
// call it on create so the contract holds regardless of storage mode.
func (f Fields) Validate() error {
	err := validate.Struct(f)
	if err == nil {
		return nil
	}

	var details []FieldError
	for _, fe := range err.(validator.ValidationErrors) {
		field := strings.ToLower(fe.Field())
		var message string
		switch fe.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}
		details = append(details, FieldError{Field: field, Message: message})
	}
	return &ValidationError{Details: details}
}
