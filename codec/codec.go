// Package codec centralizes JSON encoding for datasets and generated rows.
//
// Catalog loaders decode JSON datasets through a Codec and the CLI encodes
// generated rows through one, so both sides can switch implementations by name.
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Used by configuration and command-line flags that select a codec as a string.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "":
		return Default, true
	default:
		return nil, false
	}
}

// Names lists the built-in codec names.
func Names() []string {
	return []string{"json", "go-json"}
}

// MustMarshal is a helper for tests and examples.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

// LineAppender is implemented by codecs that can frame a value as one JSON line
// without an intermediate allocation.
type LineAppender interface {
	AppendLine(dst []byte, v any) ([]byte, error)
}

// AppendLine appends v encoded by c plus a trailing newline to dst.
func AppendLine(c Codec, dst []byte, v any) ([]byte, error) {
	if la, ok := c.(LineAppender); ok {
		return la.AppendLine(dst, v)
	}
	b, err := c.Marshal(v)
	if err != nil {
		return nil, err
	}
	dst = append(dst, b...)
	return append(dst, '\n'), nil
}
