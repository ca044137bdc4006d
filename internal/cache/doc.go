// Package cache provides a byte-bounded LRU for raw dataset blobs.
//
// Catalog files are immutable for the life of a process, so entries are only
// dropped on eviction or explicit removal.
package cache
