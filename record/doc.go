// Package record provides the tagged value model shared by loaders and samplers.
//
// A Value is one of a closed set of kinds:
//
//   - Null: record.Null()
//   - Bool: record.Bool(true)
//   - Int: record.Int(42)
//   - Float: record.Float(3.14)
//   - String: record.String("Berlin")
//   - Array: record.Array([]record.Value{...})
//   - Object: record.Object(record.Record{...})
//
// A Record is an ordered field-name-to-value mapping and a Dataset is the
// ordered sequence of records produced by one load:
//
//	rec := record.Record{
//	    {Name: "first", Value: record.String("Ada")},
//	    {Name: "last", Value: record.String("Lovelace")},
//	}
//
// JSON encoding keeps field order in both directions, so a catalog row sampled
// and written back out looks like the row that was loaded.
package record
