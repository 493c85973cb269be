package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

// Decimal-degree bounds enforced at the request-parsing boundary.
var (
	latitudeRegex  = regexp.MustCompile(`^[-+]?([1-8]?\d(\.\d+)?|90(\.0+)?)$`)
	longitudeRegex = regexp.MustCompile(`^[-+]?(180(\.0+)?|((1[0-7]\d)|([1-9]?\d))(\.\d+)?)$`)
)

func init() {
	validate = validator.New()

	validate.RegisterValidation("object_id", validateObjectID)
	validate.RegisterValidation("latitude_str", validateLatitudeString)
	validate.RegisterValidation("longitude_str", validateLongitudeString)
	validate.RegisterValidation("ad_radius", validateAdRadius)
}

// Common validation errors
var (
	ErrInvalidObjectID    = errors.New("invalid object ID format")
	ErrInvalidCoordinates = errors.New("invalid GPS coordinates")
	ErrInvalidRadius      = errors.New("invalid advertisement radius")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ToDetails flattens the errors into the field->message map used by the
// VALIDATION_ERROR response envelope.
func (v ValidationErrors) ToDetails() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		details[err.Field] = err.Message
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "object_id":
		return "Invalid ID format"
	case "latitude_str":
		return "Latitude must be a decimal degree between -90 and 90"
	case "longitude_str":
		return "Longitude must be a decimal degree between -180 and 180"
	case "ad_radius":
		return "Radius must be between 1 and 100 kilometers"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validateObjectID(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Let required tag handle empty values
	}
	_, err := primitive.ObjectIDFromHex(value)
	return err == nil
}

func validateLatitudeString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return latitudeRegex.MatchString(value)
}

func validateLongitudeString(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return longitudeRegex.MatchString(value)
}

func validateAdRadius(fl validator.FieldLevel) bool {
	radius := fl.Field().Float()
	return radius >= 1.0 && radius <= 100.0
}

// IsValidLatitudeString reports whether s passes the latitude bounds regex.
func IsValidLatitudeString(s string) bool {
	return latitudeRegex.MatchString(s)
}

// IsValidLongitudeString reports whether s passes the longitude bounds regex.
func IsValidLongitudeString(s string) bool {
	return longitudeRegex.MatchString(s)
}
