package sampler

import (
	"math"
	"math/rand"

	"github.com/hupe1980/skewgen/record"
)

const (
	// DefaultKeySpaceSize is the key-space size of a new KeySampler.
	DefaultKeySpaceSize = 1000
	// DefaultKeySkew is the skew of a new KeySampler.
	DefaultKeySkew = 0.5
	// MaxKeySkew is the largest accepted key skew.
	MaxKeySkew = 3.0
)

// KeySampler draws surrogate foreign keys from [0, size) with a power-law
// weight (key+1)^(-skew), so low keys are referenced most often.
//
// The weight table is rebuilt wholesale whenever size or skew changes.
type KeySampler struct {
	rng     *rand.Rand
	size    int
	skew    float64
	weights *Weighted[int]
}

// NewKeySampler returns a sampler over DefaultKeySpaceSize keys with
// DefaultKeySkew, ready to sample.
func NewKeySampler(optFns ...Option) *KeySampler {
	o := newOptions(optFns)
	s := &KeySampler{rng: o.rng}
	if err := s.rebuild(DefaultKeySpaceSize, DefaultKeySkew); err != nil {
		panic(err) // defaults are valid
	}
	return s
}

// SetSize sets the key-space size and rebuilds the weight table.
func (s *KeySampler) SetSize(size int) error {
	if size <= 0 {
		return configErrorf("key space size must be positive, got %d", size)
	}
	return s.rebuild(size, s.skew)
}

// SetSkew sets the power-law exponent and rebuilds the weight table.
// The skew must lie in [0, MaxKeySkew].
func (s *KeySampler) SetSkew(skew float64) error {
	if math.IsNaN(skew) || skew < 0 || skew > MaxKeySkew {
		return configErrorf("key skew must be within [0, %g], got %v", MaxKeySkew, skew)
	}
	return s.rebuild(s.size, skew)
}

// rebuild replaces the weight table; the old one is discarded only on success.
func (s *KeySampler) rebuild(size int, skew float64) error {
	w := NewWeighted[int](s.rng)
	w.Grow(size)
	for key := 0; key < size; key++ {
		if err := w.Add(key, math.Pow(float64(key+1), -skew)); err != nil {
			return err
		}
	}
	s.size = size
	s.skew = skew
	s.weights = w
	return nil
}

// SampleKey draws a key in [0, Size()).
func (s *KeySampler) SampleKey() int {
	key, _ := s.weights.Sample()
	return key
}

// Sample draws a key as an Int value.
func (s *KeySampler) Sample() (record.Value, error) {
	return record.Int(int64(s.SampleKey())), nil
}

// Size returns the key-space size.
func (s *KeySampler) Size() int { return s.size }

// Skew returns the power-law exponent.
func (s *KeySampler) Skew() float64 { return s.skew }
