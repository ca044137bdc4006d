package sampler

import (
	"log/slog"
	"math/rand"
	"time"

	"github.com/hupe1980/skewgen/blobstore"
	"github.com/hupe1980/skewgen/codec"
	"github.com/hupe1980/skewgen/resources"
)

type options struct {
	rng       *rand.Rand
	resources blobstore.BlobStore
	codec     codec.Codec
	logger    *slog.Logger
}

// Option configures sampler constructors.
type Option func(*options)

// WithRand sets the random source. Samplers are single-owner, so the source
// must not be shared with another goroutine.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds a private random source, making draws reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) // nolint gosec
	}
}

// WithResources sets the store LoadFromResource reads from.
//
// If nil is passed, the bundled catalogs in package resources are used.
func WithResources(store blobstore.BlobStore) Option {
	return func(o *options) {
		o.resources = store
	}
}

// WithCodec sets the codec used to decode JSON datasets.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		o.codec = c
	}
}

// WithLogger sets the logger for load events. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(optFns []Option) options {
	o := options{}
	for _, fn := range optFns {
		fn(&o)
	}
	if o.rng == nil {
		o.rng = newRand()
	}
	if o.resources == nil {
		o.resources = blobstore.NewFSStore(resources.FS)
	}
	if o.codec == nil {
		o.codec = codec.Default
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano())) // nolint gosec
}
