// Package s3 provides an S3 implementation of the blobstore.BlobStore interface.
//
// # Usage
//
//	store, err := s3.New(ctx, "my-bucket",
//	    s3.WithPrefix("catalogs/"),
//	    s3.WithRegion("us-east-1"),
//	)
//
//	catalog := sampler.NewCatalogSampler(sampler.WithResources(store))
//	err = catalog.LoadFromResource(ctx, "names.csv.gz")
//
// # Features
//
//   - Range reads for partial fetches
//   - Automatic pagination for listing
//   - Configurable prefix for multi-tenant isolation
package s3
