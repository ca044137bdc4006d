package testutil

import (
	"math"
	"math/rand"
	"sort"
)

// RNG encapsulates a seeded random number generator.
type RNG struct {
	seed int64
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{seed: seed}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Rand returns a fresh *rand.Rand positioned at the start of the seed's
// sequence. Two calls yield identical, independent streams.
func (r *RNG) Rand() *rand.Rand {
	return rand.New(rand.NewSource(r.seed)) // nolint gosec
}

// Histogram counts observations of comparable keys.
type Histogram[K comparable] struct {
	counts map[K]int
	total  int
}

// NewHistogram returns an empty histogram.
func NewHistogram[K comparable]() *Histogram[K] {
	return &Histogram[K]{counts: make(map[K]int)}
}

// Collect draws n observations.
func Collect[K comparable](n int, draw func() K) *Histogram[K] {
	h := NewHistogram[K]()
	for range n {
		h.Add(draw())
	}
	return h
}

// Add records one observation.
func (h *Histogram[K]) Add(k K) {
	h.counts[k]++
	h.total++
}

// Count returns the number of observations of k.
func (h *Histogram[K]) Count(k K) int { return h.counts[k] }

// Total returns the number of observations.
func (h *Histogram[K]) Total() int { return h.total }

// Distinct returns the number of distinct keys observed.
func (h *Histogram[K]) Distinct() int { return len(h.counts) }

// Freq returns the empirical frequency of k.
func (h *Histogram[K]) Freq(k K) float64 {
	if h.total == 0 {
		return 0
	}
	return float64(h.counts[k]) / float64(h.total)
}

// Keys returns the observed keys ordered by descending count.
func (h *Histogram[K]) Keys() []K {
	keys := make([]K, 0, len(h.counts))
	for k := range h.counts {
		keys = append(keys, k)
	}
	sort.SliceStable(keys, func(i, j int) bool { return h.counts[keys[i]] > h.counts[keys[j]] })
	return keys
}

// MaxUniformDeviation returns max |Freq(i) - 1/(hi-lo)| over integers in [lo, hi).
func MaxUniformDeviation(h *Histogram[int], lo, hi int) float64 {
	want := 1 / float64(hi-lo)
	var worst float64
	for i := lo; i < hi; i++ {
		worst = math.Max(worst, math.Abs(h.Freq(i)-want))
	}
	return worst
}

// OutOfRange returns the number of observations outside [lo, hi).
func OutOfRange(h *Histogram[int], lo, hi int) int {
	n := 0
	for k, c := range h.counts {
		if k < lo || k >= hi {
			n += c
		}
	}
	return n
}
