// Package skewgen generates synthetic records whose field values follow
// skewed distributions.
//
// A Generator owns an ordered list of fields. Each field is filled by a
// sampler from package sampler: a catalog sampler draws rows from a loaded
// dataset with a tunable bias toward its head or tail, a key sampler draws
// power-law distributed integer keys, and a UUID sampler draws random ids.
//
// # Quick Start
//
//	skew := 2.0
//	gen, err := skewgen.New(ctx, []skewgen.Field{
//	    {Name: "id", Spec: sampler.Spec{Kind: sampler.KindUUID}},
//	    {Name: "first", Spec: sampler.Spec{Kind: sampler.KindCatalog, Resource: "names.csv", Field: "first", Skew: &skew}},
//	    {Name: "user", Spec: sampler.Spec{Kind: sampler.KindKey}},
//	}, skewgen.WithSeed(42))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	row, err := gen.Row()
//
// # Streaming
//
// Run emits rows to a callback, optionally throttled:
//
//	gen, _ := skewgen.New(ctx, fields, skewgen.WithRate(100, 10))
//	err := gen.Run(ctx, 1000, func(r record.Record) error {
//	    return enc.Encode(r)
//	})
//
// # Errors
//
// Invalid field specs and malformed or empty datasets wrap
// sampler.ErrConfiguration. Storage failures surface as *sampler.IOError.
// Both are wrapped in a *FieldError naming the field that failed.
package skewgen
