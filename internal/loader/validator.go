package loader

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("notblank", validateNotBlank)
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors is returned when a decoded document breaks a field rule.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	parts := make([]string, 0, len(v))
	for _, e := range v {
		parts = append(parts, e.Message)
	}
	return "invalid document: " + strings.Join(parts, "; ")
}

func validateDocument(doc *document) error {
	err := validate.Struct(doc)
	if err == nil {
		return nil
	}

	var errs ValidationErrors
	for _, err := range err.(validator.ValidationErrors) {
		// Namespace is "document.books[0].title"; drop the struct name.
		field := err.Namespace()
		if i := strings.Index(field, "."); i >= 0 {
			field = field[i+1:]
		}

		var message string
		switch err.Tag() {
		case "required":
			message = fmt.Sprintf("%s is required", field)
		case "notblank":
			message = fmt.Sprintf("%s must not be blank", field)
		default:
			message = fmt.Sprintf("%s is invalid", field)
		}

		errs = append(errs, ValidationError{
			Field:   field,
			Message: message,
		})
	}
	return errs
}
