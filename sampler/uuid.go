package sampler

import (
	"math/rand"

	"github.com/google/uuid"
	"github.com/hupe1980/skewgen/record"
)

// UUIDSampler draws random version 4 UUIDs as string values.
// Bytes come from the sampler's random source, so a seeded sampler repeats.
type UUIDSampler struct {
	rng *rand.Rand
}

// NewUUIDSampler returns a UUID sampler.
func NewUUIDSampler(optFns ...Option) *UUIDSampler {
	return &UUIDSampler{rng: newOptions(optFns).rng}
}

// Sample draws one UUID.
func (s *UUIDSampler) Sample() (record.Value, error) {
	id, err := uuid.NewRandomFromReader(s.rng)
	if err != nil {
		return record.Value{}, err
	}
	return record.String(id.String()), nil
}
