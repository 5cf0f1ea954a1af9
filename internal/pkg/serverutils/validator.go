package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"ai-tutor-be/internal/pkg/apperror"
)

var validate = validator.New()

// ValidateRequest runs struct tag validation and converts the first failure
// into a ValidationError with a human-readable message, e.g. "text is required".
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrs) == 0 {
		return apperror.Validation("invalid request body")
	}

	fe := validationErrs[0]
	field := fieldName(fe)
	switch fe.Tag() {
	case "required":
		return apperror.Validation(fmt.Sprintf("%s is required", field))
	case "email":
		return apperror.Validation(fmt.Sprintf("%s must be a valid email address", field))
	case "min":
		return apperror.Validation(fmt.Sprintf("%s must be at least %s characters", field, fe.Param()))
	case "oneof":
		return apperror.Validation(fmt.Sprintf("%s must be one of: %s", field, fe.Param()))
	default:
		return apperror.Validation(fmt.Sprintf("%s is invalid", field))
	}
}

func fieldName(fe validator.FieldError) string {
	// Struct fields are CamelCase; requests use snake_case JSON keys.
	return toSnake(fe.Field())
}

func toSnake(s string) string {
	var b strings.Builder
	for i, r := range s {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
