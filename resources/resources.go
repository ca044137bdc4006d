// Package resources bundles small reference catalogs into the binary.
//
//   - names.csv: first name, last name, gender
//   - cities.tsv: largest cities with country and population
//   - companies.json: fictional companies with mixed field types
//
// Catalog samplers read from FS by default when loading by resource name.
package resources

import (
	"embed"
	"io/fs"
)

//go:embed data
var data embed.FS

// FS is the bundled catalog tree rooted so names are bare file names ("names.csv").
var FS fs.FS = mustSub(data, "data")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}
