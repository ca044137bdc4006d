// Package blobstore provides the byte sources catalog datasets are loaded from.
//
// BlobStore is the interface for reading immutable blobs by name.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem
//   - MemoryStore: in-memory map, for tests
//   - FSStore: any fs.FS, e.g. an embed.FS of bundled catalogs
//   - CachingStore: read-through whole-blob cache over another store
//   - s3.Store: Amazon S3 with range reads
//   - minio.Store: MinIO and other S3-compatible services
//
// # Custom Implementations
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)
//	}
//
//	type Blob interface {
//	    ReadAt(ctx, p, off) (int, error)
//	    ReadRange(ctx, off, len) (io.ReadCloser, error)
//	    Size() int64
//	    Close() error
//	}
//
// Stores that can enumerate their contents also implement Lister. Use ReadAll
// to fetch a whole blob regardless of backend.
package blobstore
