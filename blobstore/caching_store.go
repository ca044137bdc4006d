package blobstore

import (
	"context"

	"github.com/hupe1980/skewgen/internal/cache"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheCapacity bounds a CachingStore created with capacity <= 0.
const DefaultCacheCapacity = 64 << 20

// CachingStore wraps a BlobStore and keeps whole blobs in memory.
//
// Concurrent opens of the same uncached name share a single read from the
// inner store, so several fields drawing from one remote catalog fetch it once.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRU
	group singleflight.Group
}

// NewCachingStore creates a new CachingStore holding up to capacity bytes.
func NewCachingStore(inner BlobStore, capacity int64) *CachingStore {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacity),
	}
}

// Open returns an in-memory blob, reading through to the inner store on a miss.
func (s *CachingStore) Open(ctx context.Context, name string) (Blob, error) {
	if data, ok := s.cache.Get(name); ok {
		return &memoryBlob{data: data}, nil
	}

	v, err, _ := s.group.Do(name, func() (any, error) {
		if data, ok := s.cache.Get(name); ok {
			return data, nil
		}
		data, err := ReadAll(ctx, s.inner, name)
		if err != nil {
			return nil, err
		}
		s.cache.Set(name, data)
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: v.([]byte)}, nil
}

// List delegates to the inner store when it can list.
func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	if l, ok := s.inner.(Lister); ok {
		return l.List(ctx, prefix)
	}
	return nil, errNotListable
}

// Invalidate drops the cached copy of name.
func (s *CachingStore) Invalidate(name string) {
	s.cache.Remove(name)
}

// Stats returns cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}
