package plan

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validation errors.
var (
	ErrMissingField = errors.New("required field is missing")
	ErrInvalidField = errors.New("field has an invalid value")
)

// FieldError names the PlanData field that failed validation.
type FieldError struct {
	Field string // e.g. "jobs[0].times[1].end"
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report fields by their JSON names so messages match the plan file.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks that required fields are present: sleep and wake, a name
// and at least one complete time range for every list item, and start/end on
// the optional blocks. Time formats are checked by the builder.
func (p *PlanData) Validate() error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("validating plan: %w", err)
	}

	fe := verrs[0]
	field := fe.Namespace()
	if i := strings.Index(field, "."); i >= 0 {
		field = field[i+1:]
	}

	switch fe.Tag() {
	case "required":
		return &FieldError{Field: field, Err: ErrMissingField}
	case "min":
		if fe.Kind() == reflect.Slice {
			return &FieldError{Field: field, Err: ErrMissingField}
		}
		return &FieldError{Field: field, Err: fmt.Errorf("%w: %v", ErrInvalidField, fe.Value())}
	default:
		return &FieldError{Field: field, Err: fmt.Errorf("%w: failed %q", ErrInvalidField, fe.Tag())}
	}
}
