package blobstore

import (
	"context"
	"io/fs"
	"sort"
	"strings"
)

// FSStore exposes an fs.FS (typically an embed.FS of bundled catalogs) as a BlobStore.
type FSStore struct {
	fsys fs.FS
}

// NewFSStore creates a store backed by fsys.
func NewFSStore(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// Open reads the named file fully; fs.FS files are small bundled resources.
func (s *FSStore) Open(ctx context.Context, name string) (Blob, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(s.fsys, strings.TrimPrefix(name, "/"))
	if err != nil {
		return nil, err
	}
	return &memoryBlob{data: data}, nil
}

// List returns all files whose path has the given prefix.
func (s *FSStore) List(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if !d.IsDir() && strings.HasPrefix(p, prefix) {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	return names, nil
}
