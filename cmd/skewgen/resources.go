package main

import (
	"context"
	"fmt"

	"github.com/hupe1980/skewgen/blobstore"
	"github.com/hupe1980/skewgen/blobstore/minio"
	"github.com/hupe1980/skewgen/blobstore/s3"
	"github.com/hupe1980/skewgen/config"
	"github.com/hupe1980/skewgen/resources"
)

// openResources builds the store catalog resources are read from.
func openResources(ctx context.Context, cfg config.ResourcesConfig) (blobstore.BlobStore, error) {
	switch cfg.Backend {
	case config.BackendEmbedded, "":
		return blobstore.NewFSStore(resources.FS), nil
	case config.BackendLocal:
		return blobstore.NewLocalStore(cfg.LocalPath), nil
	case config.BackendS3:
		opts := []s3.Option{
			s3.WithPrefix(cfg.Prefix),
			s3.WithRegion(cfg.Region),
			s3.WithPathStyle(cfg.PathStyle),
		}
		if cfg.Endpoint != "" {
			opts = append(opts, s3.WithEndpoint(cfg.Endpoint))
		}
		return s3.New(ctx, cfg.Bucket, opts...)
	case config.BackendMinIO:
		return minio.Connect(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL, cfg.Bucket, cfg.Prefix)
	default:
		return nil, fmt.Errorf("unknown resources backend %q", cfg.Backend)
	}
}
