// Package sampler draws synthetic field values with configurable skew.
//
// # Samplers
//
//   - CatalogSampler: records from a loaded CSV, TSV or JSON dataset, indexed
//     through an IndexSampler so low rows can be favoured.
//   - KeySampler: integer keys in [0, size) with weight (key+1)^(-skew), a
//     surrogate for foreign keys with Zipf-like popularity.
//   - UUIDSampler: random UUID strings.
//
// Every variant implements Sampler. A Registry builds samplers from a Spec by
// kind:
//
//	reg := sampler.NewRegistry()
//	s, err := reg.New(ctx, sampler.Spec{Kind: sampler.KindKey, Size: 500})
//	v, err := s.Sample()
//
// # Skew
//
// IndexSampler skew k > 0 returns the minimum of k+1 uniform draws, so
// P(index = min) grows with k; k < 0 mirrors the bias toward max-1. KeySampler
// skew is a real exponent in [0, 3]; 0 is uniform.
//
// # Errors
//
// Configuration failures wrap ErrConfiguration and are reported by the call
// that configures, never deferred to Sample. Read failures are *IOError.
//
// Samplers are not safe for concurrent use.
package sampler
