package sampler

import (
	"context"
	"log/slog"

	"github.com/hupe1980/skewgen/blobstore"
	"github.com/hupe1980/skewgen/dataset"
	"github.com/hupe1980/skewgen/record"
)

// CatalogSampler draws records from a dataset loaded into memory.
//
// Row order matters: with a positive skew the first rows are drawn most often.
// Skew and projection field may be set before or after loading; the index is
// rebuilt on every change, so call order does not affect the result.
type CatalogSampler struct {
	opts options

	skew  int
	field string

	data   record.Dataset
	source string
	format dataset.Format
	index  *IndexSampler
}

// NewCatalogSampler returns an empty catalog. Load a dataset before sampling.
func NewCatalogSampler(optFns ...Option) *CatalogSampler {
	return &CatalogSampler{opts: newOptions(optFns)}
}

// LoadFromPath loads a dataset from the local filesystem.
func (c *CatalogSampler) LoadFromPath(ctx context.Context, path string) error {
	return c.LoadFromStore(ctx, blobstore.NewLocalStore(""), path)
}

// LoadFromResource loads a dataset by name from the configured resource store.
func (c *CatalogSampler) LoadFromResource(ctx context.Context, name string) error {
	return c.LoadFromStore(ctx, c.opts.resources, name)
}

// LoadFromStore loads the named dataset from store and rebuilds the index.
//
// The format comes from the name's suffix (.json, .csv, .tsv, optionally
// followed by .gz, .zst or .lz4). On failure any previously loaded dataset
// stays in effect.
func (c *CatalogSampler) LoadFromStore(ctx context.Context, store blobstore.BlobStore, name string) error {
	log := c.opts.logger.With("source", name)

	ds, format, err := dataset.Load(ctx, store, name, c.opts.codec)
	if err != nil {
		err = translateLoadError(name, err)
		log.ErrorContext(ctx, "dataset load failed", "error", err)
		return err
	}

	if err := checkField(ds, format, c.field); err != nil {
		return err
	}

	index := NewIndexSampler(c.opts.rng)
	if err := index.Configure(0, len(ds), c.skew); err != nil {
		return err
	}

	c.data = ds
	c.source = name
	c.format = format
	c.index = index

	log.DebugContext(ctx, "dataset loaded",
		slog.String("format", format.String()),
		slog.Int("records", len(ds)),
		slog.Int("skew", c.skew),
	)
	return nil
}

// SetSkew sets the index skew. If a dataset is loaded the index is rebuilt
// immediately; otherwise the value is applied by the next load.
func (c *CatalogSampler) SetSkew(skew int) {
	c.skew = skew
	if c.index != nil {
		// Cannot fail: a loaded dataset is never empty.
		_ = c.index.Configure(0, len(c.data), skew)
	}
}

// SetField projects Sample onto a single field. An empty name restores whole
// records. For a loaded delimited dataset the field must exist in the header.
func (c *CatalogSampler) SetField(name string) error {
	if c.index != nil {
		if err := checkField(c.data, c.format, name); err != nil {
			return err
		}
	}
	c.field = name
	return nil
}

// checkField validates a projection against delimited headers. JSON records
// are heterogeneous, so a missing field there samples as null.
func checkField(ds record.Dataset, format dataset.Format, name string) error {
	if name == "" || format == dataset.FormatJSON || len(ds) == 0 {
		return nil
	}
	if !ds[0].Has(name) {
		return configErrorf("field %q not in header %v", name, ds[0].Names())
	}
	return nil
}

// SampleRecord draws one record. The record is shared with the dataset and
// must not be modified; Clone it first if needed.
func (c *CatalogSampler) SampleRecord() (record.Record, error) {
	if c.index == nil {
		return nil, ErrNotLoaded
	}
	return c.data[c.index.Sample()], nil
}

// Sample draws one record as an object value, or the projected field value.
func (c *CatalogSampler) Sample() (record.Value, error) {
	r, err := c.SampleRecord()
	if err != nil {
		return record.Value{}, err
	}
	if c.field == "" {
		return record.Object(r), nil
	}
	v, ok := r.Get(c.field)
	if !ok {
		return record.Null(), nil
	}
	return v, nil
}

// Len returns the number of loaded records.
func (c *CatalogSampler) Len() int { return len(c.data) }

// Skew returns the configured skew.
func (c *CatalogSampler) Skew() int { return c.skew }

// Field returns the projection field, or "".
func (c *CatalogSampler) Field() string { return c.field }

// Source returns the name of the loaded dataset, or "".
func (c *CatalogSampler) Source() string { return c.source }

// Dataset returns the loaded records. The slice must not be modified.
func (c *CatalogSampler) Dataset() record.Dataset { return c.data }
