package middleware

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/roronge/iuran04/internal/interfaces/http/dto"
)

// idPhoneRegex matches Indonesian mobile numbers: 08xx, 628xx or +628xx
// followed by 7 to 11 digits
var idPhoneRegex = regexp.MustCompile(`^(\+62|62|0)8[0-9]{7,11}$`)

// SetupValidator registers field naming and custom validation tags on
// gin's binding validator. Called once at startup, before any request
// binds a body that uses the custom tags.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report json (or form) field names in validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		}
		return name
	})

	_ = v.RegisterValidation("idphone", func(fl validator.FieldLevel) bool {
		return idPhoneRegex.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("direction", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "in" || value == "out"
	})
}

// FormatValidationErrors turns validator field errors into the standard
// error response with per-field details
func FormatValidationErrors(err error, requestID string) dto.Response {
	var details []dto.ValidationDetail

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			details = append(details, dto.ValidationDetail{
				Field:   e.Field(),
				Message: validationMessage(e),
			})
		}
	}

	return dto.NewValidationErrorResponse("Request validation failed", requestID, details)
}

// validationMessage returns a human-readable message for one failed tag
func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "uuid":
		return "Invalid UUID format"
	case "min":
		if e.Type().Kind() == reflect.String {
			return "Must be at least " + e.Param() + " characters"
		}
		return "Must be at least " + e.Param()
	case "max":
		if e.Type().Kind() == reflect.String {
			return "Must be at most " + e.Param() + " characters"
		}
		return "Must be at most " + e.Param()
	case "oneof":
		return "Must be one of: " + e.Param()
	case "idphone":
		return "Invalid Indonesian phone number"
	case "direction":
		return "Direction must be 'in' or 'out'"
	default:
		return "Invalid value"
	}
}
