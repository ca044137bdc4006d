// Package testutil provides testing utilities for skewgen.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded random sources and histograms for checking the shape
// of sampled distributions.
//
// # Seeded Randomness
//
//	rng := testutil.NewRNG(seed)
//	s := sampler.NewKeySampler(sampler.WithRand(rng.Rand()))
//
// # Histograms
//
//	h := testutil.Collect(100_000, s.SampleKey)
//	h.Freq(0)                    // empirical P(key = 0)
//	h.MaxUniformDeviation(0, 10) // largest |freq - 1/10| over [0, 10)
package testutil
