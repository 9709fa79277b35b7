// internal/utils/validator.go
package utils

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var pincodeRe = regexp.MustCompile(`^[0-9]{5,6}$`)

func init() {
	validate = validator.New()
	validate.RegisterValidation("pincode", validatePincode)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Delivery postal codes are 5 or 6 digits.
func validatePincode(fl validator.FieldLevel) bool {
	return pincodeRe.MatchString(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "email":
		return "Invalid email format"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "pincode":
		return "Pincode must be 5 or 6 digits"
	default:
		return e.Field() + " is invalid"
	}
}
