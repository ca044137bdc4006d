// Package minio reads catalog datasets from MinIO or any other S3-compatible
// server through the MinIO Go client.
//
// # Usage
//
//	store, err := minio.Connect("localhost:9000", "minioadmin", "minioadmin", false, "datasets", "catalogs/")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	catalog := sampler.NewCatalogSampler(sampler.WithResources(store))
//	err = catalog.LoadFromResource(ctx, "cities.tsv")
//
// Use NewStore to wrap a preconfigured *minio.Client instead. Objects are
// fetched with ranged GETs; Put and Delete exist for seeding test buckets.
package minio
