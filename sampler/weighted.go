package sampler

import (
	"math"
	"math/rand"
	"slices"
	"sort"
)

// Weighted samples items with probability proportional to their weight.
//
// Weights are kept as a cumulative array: Add is O(1) amortized and Sample is
// a binary search, O(log n).
type Weighted[T any] struct {
	rng   *rand.Rand
	items []T
	cum   []float64
}

// NewWeighted returns an empty distribution drawing from rng.
// A nil rng is replaced by a time-seeded source.
func NewWeighted[T any](rng *rand.Rand) *Weighted[T] {
	if rng == nil {
		rng = newRand()
	}
	return &Weighted[T]{rng: rng}
}

// Grow reserves capacity for n more items.
func (w *Weighted[T]) Grow(n int) {
	w.items = slices.Grow(w.items, n)
	w.cum = slices.Grow(w.cum, n)
}

// Add appends item with the given weight.
// The weight must be finite and strictly positive.
func (w *Weighted[T]) Add(item T, weight float64) error {
	if !(weight > 0) || math.IsInf(weight, 0) {
		return configErrorf("weight must be finite and positive, got %v", weight)
	}
	total := weight
	if n := len(w.cum); n > 0 {
		total += w.cum[n-1]
	}
	w.items = append(w.items, item)
	w.cum = append(w.cum, total)
	return nil
}

// Sample draws one item. It returns false only when the distribution is empty.
func (w *Weighted[T]) Sample() (T, bool) {
	n := len(w.cum)
	if n == 0 {
		var zero T
		return zero, false
	}
	r := w.rng.Float64() * w.cum[n-1]
	i := sort.Search(n, func(i int) bool { return w.cum[i] > r })
	if i == n {
		// r rounded up to the total.
		i = n - 1
	}
	return w.items[i], true
}

// Len returns the number of items.
func (w *Weighted[T]) Len() int { return len(w.items) }

// Total returns the sum of all weights.
func (w *Weighted[T]) Total() float64 {
	if len(w.cum) == 0 {
		return 0
	}
	return w.cum[len(w.cum)-1]
}
