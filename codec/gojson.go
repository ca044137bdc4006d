package codec

import gojson "github.com/goccy/go-json"

// GoJSON is the default codec. Catalog loads decode JSON datasets through it
// and the CLI encodes each generated row with it.
type GoJSON struct{}

func (GoJSON) Marshal(v any) ([]byte, error) { return gojson.Marshal(v) }

func (GoJSON) Unmarshal(data []byte, v any) error { return gojson.Unmarshal(data, v) }

func (GoJSON) Name() string { return "go-json" }

// AppendLine encodes v and appends it to dst followed by a newline, the
// framing used for JSON-lines output.
func (GoJSON) AppendLine(dst []byte, v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, err
	}
	dst = append(dst, b...)
	return append(dst, '\n'), nil
}
