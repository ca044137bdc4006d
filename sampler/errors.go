package sampler

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/skewgen/dataset"
)

var (
	// ErrConfiguration marks caller errors detected while configuring a sampler:
	// unsupported suffixes, malformed delimited rows, out-of-range sizes and
	// skews, empty index ranges. Configuration errors are never retried.
	ErrConfiguration = errors.New("configuration error")

	// ErrNotLoaded is returned when a catalog is sampled before any successful load.
	ErrNotLoaded = errors.New("catalog sampler: no dataset loaded")
)

// IOError reports a failure to read or decode a dataset source.
//
// The original underlying error can be accessed via errors.Unwrap, so
// errors.Is(err, fs.ErrNotExist) still holds for missing files.
type IOError struct {
	Source string
	cause  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Source, e.cause)
}

func (e *IOError) Unwrap() error { return e.cause }

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// translateLoadError maps dataset and blobstore failures onto the public taxonomy.
func translateLoadError(source string, err error) error {
	if err == nil {
		return nil
	}

	var fc *dataset.ErrFieldCountMismatch
	var dup *dataset.ErrDuplicateField
	switch {
	case errors.Is(err, dataset.ErrUnsupportedFormat),
		errors.Is(err, dataset.ErrEmpty),
		errors.As(err, &fc),
		errors.As(err, &dup):
		return fmt.Errorf("%w: %s: %w", ErrConfiguration, source, err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	}

	return &IOError{Source: source, cause: err}
}
