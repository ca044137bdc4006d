// Package dataset turns named byte sources into in-memory record datasets.
//
// The format is chosen by suffix:
//
//	.json  array of objects, one record per object
//	.csv   comma-split, first line is the header
//	.tsv   tab-split, first line is the header
//
// An optional compression suffix (.gz, .zst, .lz4) may follow the format
// suffix. Delimited formats have no quoting: a delimiter inside a value cannot
// be represented.
package dataset
