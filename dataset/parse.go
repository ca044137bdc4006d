package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/hupe1980/skewgen/codec"
	"github.com/hupe1980/skewgen/record"
)

var (
	// ErrEmpty is returned when a source yields no records.
	ErrEmpty = errors.New("dataset is empty")

	// ErrMalformed is returned when a JSON source cannot be decoded.
	ErrMalformed = errors.New("malformed dataset")
)

// ErrFieldCountMismatch reports a delimited row whose field count differs from the header.
type ErrFieldCountMismatch struct {
	Line     int
	Expected int
	Actual   int
}

func (e *ErrFieldCountMismatch) Error() string {
	return fmt.Sprintf("line %d: field count mismatch: expected %d, got %d", e.Line, e.Expected, e.Actual)
}

// ErrDuplicateField reports a header naming the same field twice.
type ErrDuplicateField struct {
	Name string
}

func (e *ErrDuplicateField) Error() string {
	return fmt.Sprintf("duplicate field %q in header", e.Name)
}

// ParseDelimited parses header-first delimited text.
//
// Every value is a string. There is no quoting or escaping: a delimiter inside
// a value is a field boundary. CRLF line endings are accepted and a single
// trailing newline is ignored.
func ParseDelimited(data []byte, delim byte) (record.Dataset, error) {
	text := string(data)
	text = strings.TrimPrefix(text, "\ufeff")
	if text == "" {
		return nil, ErrEmpty
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	sep := string(delim)
	header := strings.Split(strings.TrimSuffix(lines[0], "\r"), sep)
	seen := make(map[string]struct{}, len(header))
	for _, name := range header {
		if _, dup := seen[name]; dup {
			return nil, &ErrDuplicateField{Name: name}
		}
		seen[name] = struct{}{}
	}

	ds := make(record.Dataset, 0, len(lines)-1)
	for i, line := range lines[1:] {
		fields := strings.Split(strings.TrimSuffix(line, "\r"), sep)
		if len(fields) != len(header) {
			return nil, &ErrFieldCountMismatch{Line: i + 2, Expected: len(header), Actual: len(fields)}
		}
		ds = append(ds, record.FromStrings(header, fields))
	}
	return ds, nil
}

// ParseJSON parses a JSON array of objects. Each object becomes one record
// verbatim; records need not share fields.
func ParseJSON(c codec.Codec, data []byte) (record.Dataset, error) {
	if c == nil {
		c = codec.Default
	}
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, ErrEmpty
	}
	if trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: expected a JSON array of objects", ErrMalformed)
	}
	var ds record.Dataset
	if err := c.Unmarshal(trimmed, &ds); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return ds, nil
}
