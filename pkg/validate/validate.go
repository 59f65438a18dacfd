package validate

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
)

var (
	structValidator = newValidator()
	textPolicy      = bluemonday.StrictPolicy()
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates a request DTO. Field messages are joined with ". ".
func Struct(s interface{}) error {
	err := structValidator.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fieldMessage(fe))
	}
	return errors.New(strings.Join(msgs, ". "))
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Please provide a valid email"
	case "min", "max":
		bound := comparison[fe.Tag()]
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("%s must contain %s %s items", field, bound, fe.Param())
		}
		return fmt.Sprintf("%s must be %s %s characters long", field, bound, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "numeric":
		return fmt.Sprintf("%s must be a number", field)
	case "uuid":
		return fmt.Sprintf("%s must be a valid id", field)
	case "gte", "gt", "lte":
		return fmt.Sprintf("%s must be %s %s", field, comparison[fe.Tag()], fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date in YYYY-MM-DD format", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

var comparison = map[string]string{
	"min": "at least",
	"max": "at most",
	"gte": "at least",
	"gt":  "greater than",
	"lte": "at most",
}

// SanitizeText strips markup from user supplied text before it is stored or forwarded.
func SanitizeText(s string) string {
	s = strings.ReplaceAll(strings.TrimSpace(s), "\x00", "")
	return textPolicy.Sanitize(s)
}
