package sampler

import (
	"math"
	"math/rand"
)

// IndexSampler draws integers from [min, max) with an optional rank skew.
//
// A skew of k > 0 returns the minimum of k+1 uniform draws, biasing toward
// min; k < 0 returns the maximum of |k|+1 draws, biasing toward max-1. Larger
// magnitudes sharpen the bias. No weight table is built, so configuration is
// O(1) regardless of the range size.
type IndexSampler struct {
	rng  *rand.Rand
	min  int
	n    uint64 // width of the range; may exceed math.MaxInt
	skew int
}

// NewIndexSampler returns an unconfigured sampler drawing from rng.
// A nil rng is replaced by a time-seeded source.
func NewIndexSampler(rng *rand.Rand) *IndexSampler {
	if rng == nil {
		rng = newRand()
	}
	return &IndexSampler{rng: rng}
}

// Configure sets the range [min, max) and the skew.
// It fails with ErrConfiguration when max <= min and leaves the previous
// configuration untouched.
func (s *IndexSampler) Configure(min, max, skew int) error {
	if max <= min {
		return configErrorf("index range [%d, %d) is empty", min, max)
	}
	s.min = min
	s.n = uint64(max) - uint64(min)
	s.skew = skew
	return nil
}

// Sample returns an index in [Min(), Max()).
// It panics if the sampler has never been configured.
func (s *IndexSampler) Sample() int {
	if s.n == 0 {
		panic("sampler: IndexSampler.Sample called before Configure")
	}

	v := s.offset()
	switch {
	case s.skew > 0:
		for i := 0; i < s.skew; i++ {
			if d := s.offset(); d < v {
				v = d
			}
		}
	case s.skew < 0:
		for i := 0; i < -s.skew; i++ {
			if d := s.offset(); d > v {
				v = d
			}
		}
	}
	return int(uint64(s.min) + v)
}

// offset draws uniformly from [0, n).
func (s *IndexSampler) offset() uint64 {
	if s.n <= math.MaxInt {
		return uint64(s.rng.Intn(int(s.n)))
	}
	// n > 2^63, so each draw is accepted with probability above one half.
	for {
		if v := s.rng.Uint64(); v < s.n {
			return v
		}
	}
}

// Min returns the inclusive lower bound.
func (s *IndexSampler) Min() int { return s.min }

// Max returns the exclusive upper bound.
func (s *IndexSampler) Max() int { return int(uint64(s.min) + s.n) }

// Skew returns the configured skew.
func (s *IndexSampler) Skew() int { return s.skew }
