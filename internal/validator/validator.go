// Package validator wraps go-playground/validator and reports failures as
// domain.ValidationError with JSON field paths.
package validator

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/crm-backend/internal/domain"
)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns a singleton validator instance that names fields by their json tag.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Fields validates s and returns one FieldError per failed constraint. Each
// field path is prefix joined with the JSON path inside s, e.g.
// "rules[0].variable_mapping[1].pattern".
func Fields(s any, prefix string) []domain.FieldError {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []domain.FieldError{{Field: prefix, Message: err.Error()}}
	}

	out := make([]domain.FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, domain.FieldError{
			Field:   joinPath(prefix, e.Namespace()),
			Message: message(e),
		})
	}
	return out
}

// Validate validates s and returns a *domain.ValidationError, or nil.
func Validate(s any) error {
	if errs := Fields(s, ""); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// joinPath drops the root struct name from a validator namespace.
func joinPath(prefix, namespace string) string {
	_, rest, found := strings.Cut(namespace, ".")
	if !found {
		rest = namespace
	}
	if prefix == "" {
		return rest
	}
	return prefix + "." + rest
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "email":
		return "must be a valid email address"
	default:
		return fmt.Sprintf("failed %q validation", e.Tag())
	}
}
