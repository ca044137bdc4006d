package skewgen

import (
	"log/slog"

	"github.com/hupe1980/skewgen/blobstore"
	"github.com/hupe1980/skewgen/codec"
	"github.com/hupe1980/skewgen/resources"
	"github.com/hupe1980/skewgen/sampler"
	"golang.org/x/time/rate"
)

type options struct {
	logger          *Logger
	seed            *int64
	resources       blobstore.BlobStore
	codec           codec.Codec
	registry        *sampler.Registry
	limit           rate.Limit
	burst           int
	loadConcurrency int
	metrics         MetricsCollector
	cacheBytes      int64
}

// Option configures a Generator.
type Option func(*options)

// WithLogger configures structured logging. Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := skewgen.NewJSONLogger(slog.LevelInfo)
//	gen, _ := skewgen.New(ctx, fields, skewgen.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithSeed makes generation reproducible. Field i draws from a source seeded
// with seed+i, so adding a field at the end leaves earlier columns unchanged.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = &seed
	}
}

// WithResources sets the store catalog fields load resources from.
// If nil is passed, the bundled catalogs are used.
//
// The store is wrapped in a blobstore.CachingStore unless WithResourceCache
// disables it.
func WithResources(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.resources = store
	}
}

// WithCodec sets the codec used to decode JSON catalogs.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithRegistry replaces the sampler registry, e.g. to add custom kinds.
func WithRegistry(r *sampler.Registry) Option {
	return func(o *options) {
		o.registry = r
	}
}

// WithRate limits Run to rowsPerSecond with the given burst.
// A non-positive rate disables limiting.
func WithRate(rowsPerSecond float64, burst int) Option {
	return func(o *options) {
		if rowsPerSecond <= 0 {
			o.limit = rate.Inf
			return
		}
		o.limit = rate.Limit(rowsPerSecond)
		o.burst = max(burst, 1)
	}
}

// WithLoadConcurrency bounds how many catalogs load in parallel while building.
// Values <= 0 mean no limit.
func WithLoadConcurrency(n int) Option {
	return func(o *options) {
		o.loadConcurrency = n
	}
}

// WithMetricsCollector sets a collector for load and row metrics.
//
// Example:
//
//	mc := &skewgen.BasicMetricsCollector{}
//	gen, _ := skewgen.New(ctx, fields, skewgen.WithMetricsCollector(mc))
//	// ...
//	stats := mc.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metrics = mc
	}
}

// WithResourceCache sets how many bytes of resource data are kept in memory
// while building, so fields that share a catalog read it once.
// A negative value disables the cache; zero uses blobstore.DefaultCacheCapacity.
func WithResourceCache(bytes int64) Option {
	return func(o *options) {
		o.cacheBytes = bytes
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:          NoopLogger(),
		registry:        sampler.NewRegistry(),
		limit:           rate.Inf,
		loadConcurrency: 4,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	if o.registry == nil {
		o.registry = sampler.NewRegistry()
	}
	if o.metrics == nil {
		o.metrics = NoopMetricsCollector{}
	}
	if o.resources == nil {
		o.resources = blobstore.NewFSStore(resources.FS)
	}
	if o.cacheBytes >= 0 {
		o.resources = blobstore.NewCachingStore(o.resources, o.cacheBytes)
	}
	return o
}

// samplerOptions returns the sampler options for the field at position i.
func (o *options) samplerOptions(i int, log *Logger) []sampler.Option {
	opts := []sampler.Option{
		sampler.WithLogger(log.Logger),
		sampler.WithResources(o.resources),
		sampler.WithCodec(o.codec),
	}
	if o.seed != nil {
		opts = append(opts, sampler.WithSeed(*o.seed+int64(i)))
	}
	return opts
}
