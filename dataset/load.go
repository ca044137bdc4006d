package dataset

import (
	"context"

	"github.com/hupe1980/skewgen/blobstore"
	"github.com/hupe1980/skewgen/codec"
	"github.com/hupe1980/skewgen/record"
)

// Decode unwraps and parses data in the given format.
// An empty result is reported as ErrEmpty.
func Decode(f Format, comp Compression, data []byte, c codec.Codec) (record.Dataset, error) {
	raw, err := Decompress(comp, data)
	if err != nil {
		return nil, err
	}

	var ds record.Dataset
	switch f {
	case FormatJSON:
		ds, err = ParseJSON(c, raw)
	case FormatCSV, FormatTSV:
		ds, err = ParseDelimited(raw, f.Delimiter())
	default:
		return nil, ErrUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}
	if len(ds) == 0 {
		return nil, ErrEmpty
	}
	return ds, nil
}

// Load detects the format of name, reads it from store and decodes it.
// The suffix is checked before any bytes are read.
func Load(ctx context.Context, store blobstore.BlobStore, name string, c codec.Codec) (record.Dataset, Format, error) {
	f, comp, err := Detect(name)
	if err != nil {
		return nil, 0, err
	}
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, f, err
	}
	ds, err := Decode(f, comp, data, c)
	if err != nil {
		return nil, f, err
	}
	return ds, f, nil
}
