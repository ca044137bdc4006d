package minio

import (
	"context"
	"io"
	"testing"

	"github.com/hupe1980/skewgen/blobstore"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMinioStore_Integration requires a running MinIO instance.
// Skip if not available.
func TestMinioStore_Integration(t *testing.T) {
	bucket := "test-skewgen"

	store, err := Connect("localhost:9000", "minioadmin", "minioadmin", false, bucket, "test-prefix/")
	if err != nil {
		t.Skipf("MinIO client creation failed: %v", err)
	}
	client := store.client

	ctx := context.Background()

	// Check if MinIO is reachable
	if _, err := client.ListBuckets(ctx); err != nil {
		t.Skipf("MinIO not available: %v", err)
	}

	exists, err := client.BucketExists(ctx, bucket)
	require.NoError(t, err)
	if !exists {
		require.NoError(t, client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}))
	}

	data := []byte("first,last\nAda,Lovelace\n")
	require.NoError(t, store.Put(ctx, "names.csv", data))
	t.Cleanup(func() { _ = store.Delete(ctx, "names.csv") })

	got, err := blobstore.ReadAll(ctx, store, "names.csv")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	blob, err := store.Open(ctx, "names.csv")
	require.NoError(t, err)
	rc, err := blob.ReadRange(ctx, 11, 3)
	require.NoError(t, err)
	part, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Ada", string(part))
	require.NoError(t, rc.Close())
	require.NoError(t, blob.Close())

	names, err := store.List(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, names, "names.csv")

	_, err = store.Open(ctx, "missing.csv")
	assert.ErrorIs(t, err, blobstore.ErrNotFound)
}

func TestStore_Key(t *testing.T) {
	store := NewStore(nil, "bucket", "catalogs/")
	assert.Equal(t, "catalogs/names.csv", store.key("names.csv"))
	assert.Equal(t, "catalogs", store.key(""))
}
