package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ncobase/habits/types"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
	_ = validate.RegisterValidation("isodate", isDate)
}

// errorMessages maps validation tags to messages.
var errorMessages = map[string]string{
	"required": "The field '%s' is required.",
	"min":      "The field '%s' must be at least %s characters long.",
	"max":      "The field '%s' must be no longer than %s characters.",
	"lte":      "The field '%s' must be less than or equal to %s.",
	"gte":      "The field '%s' must be greater than or equal to %s.",
	"gt":       "The field '%s' must be greater than %s.",
	"lt":       "The field '%s' must be less than %s.",
	"oneof":    "The field '%s' must be one of [%s].",
	"isodate":  "The field '%s' must be an ISO 8601 date.",
}

// fieldName reports a field by the name clients use: query fields by their
// form tag, bodies by their json tag.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.Split(f.Tag.Get(key), ",")[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

func isDate(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return true
	}
	_, err := types.ParseDate(s)
	return err == nil
}

// parseMessage constructs a friendly error message based on the validation tag.
func parseMessage(field string, e validator.FieldError) string {
	if msg, ok := errorMessages[e.Tag()]; ok {
		switch strings.Count(msg, "%s") {
		case 1:
			return fmt.Sprintf(msg, field)
		case 2:
			return fmt.Sprintf(msg, field, e.Param())
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
}

// ValidateStruct validates a struct and returns a map of client field names
// to friendly error messages. The map is empty when s is valid.
func ValidateStruct(s any) map[string]string {
	validationErrors := make(map[string]string)

	err := validate.Struct(s)
	if err == nil {
		return validationErrors
	}
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		validationErrors["_"] = err.Error()
		return validationErrors
	}
	for _, e := range validationErrs {
		validationErrors[e.Field()] = parseMessage(e.Field(), e)
	}
	return validationErrors
}
