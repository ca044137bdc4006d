package sampler

import "github.com/hupe1980/skewgen/record"

// Sampler produces one field value per call.
//
// Implementations are single-owner: Sample must not run concurrently with
// itself or with reconfiguration of the same sampler.
type Sampler interface {
	Sample() (record.Value, error)
}

var (
	_ Sampler = (*CatalogSampler)(nil)
	_ Sampler = (*KeySampler)(nil)
	_ Sampler = (*UUIDSampler)(nil)
)
