package skewgen

import (
	"errors"
	"fmt"

	"github.com/hupe1980/skewgen/sampler"
)

var (
	// ErrNoFields is returned when a generator is built without fields.
	ErrNoFields = fmt.Errorf("%w: generator needs at least one field", sampler.ErrConfiguration)

	// ErrConfiguration is re-exported from package sampler for callers that only
	// import the root package.
	ErrConfiguration = sampler.ErrConfiguration
)

// ErrDuplicateField indicates two fields share an output name.
type ErrDuplicateField struct {
	Name string
}

func (e *ErrDuplicateField) Error() string {
	return fmt.Sprintf("duplicate field name %q", e.Name)
}

// Is makes duplicate names match ErrConfiguration.
func (e *ErrDuplicateField) Is(target error) bool { return target == sampler.ErrConfiguration }

// FieldError attributes a sampler failure to the output field it serves.
//
// The original underlying error can be accessed via errors.Unwrap.
type FieldError struct {
	Field string
	cause error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.cause)
}

func (e *FieldError) Unwrap() error { return e.cause }

func fieldError(name string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FieldError
	if errors.As(err, &fe) {
		return err
	}
	return &FieldError{Field: name, cause: err}
}
