package dataset

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

// ErrUnsupportedFormat is returned for names whose suffix maps to no known format.
var ErrUnsupportedFormat = errors.New("unsupported suffix")

// Format identifies how a dataset file is parsed.
type Format uint8

const (
	// FormatJSON is a JSON array of objects.
	FormatJSON Format = iota + 1
	// FormatCSV is comma-delimited text with a header line.
	FormatCSV
	// FormatTSV is tab-delimited text with a header line.
	FormatTSV
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatCSV:
		return "csv"
	case FormatTSV:
		return "tsv"
	default:
		return "unknown"
	}
}

// Delimiter returns the field separator of a delimited format, or 0.
func (f Format) Delimiter() byte {
	switch f {
	case FormatCSV:
		return ','
	case FormatTSV:
		return '\t'
	default:
		return 0
	}
}

// Compression identifies an optional wrapper around the dataset bytes.
type Compression uint8

const (
	// CompressionNone means the bytes are used as-is.
	CompressionNone Compression = iota
	// CompressionGzip is gzip (".gz").
	CompressionGzip
	// CompressionZstd is Zstandard (".zst").
	CompressionZstd
	// CompressionLZ4 is the LZ4 frame format (".lz4").
	CompressionLZ4
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionGzip:
		return "gzip"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

var compressionSuffixes = map[string]Compression{
	".gz":  CompressionGzip,
	".zst": CompressionZstd,
	".lz4": CompressionLZ4,
}

var formatSuffixes = map[string]Format{
	".json": FormatJSON,
	".csv":  FormatCSV,
	".tsv":  FormatTSV,
}

// Detect derives format and compression from the suffix of name.
//
// A single compression suffix may wrap the format suffix ("names.csv.gz").
// Matching is case-insensitive. Nothing is read; an unknown suffix fails
// immediately with ErrUnsupportedFormat.
func Detect(name string) (Format, Compression, error) {
	base := strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))

	comp := CompressionNone
	if c, ok := compressionSuffixes[path.Ext(base)]; ok {
		comp = c
		base = strings.TrimSuffix(base, path.Ext(base))
	}

	ext := path.Ext(base)
	f, ok := formatSuffixes[ext]
	if !ok {
		if ext == "" {
			return 0, comp, fmt.Errorf("%w: %q has no suffix", ErrUnsupportedFormat, name)
		}
		return 0, comp, fmt.Errorf("%w %q: %q", ErrUnsupportedFormat, ext, name)
	}
	return f, comp, nil
}
