// Package storage implements the blob store on the local filesystem.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// DiskStore writes upload blobs under a single root directory. Stored paths
// are always inside root; the storage name is an opaque id chosen by the
// caller, never a client-supplied filename.
type DiskStore struct {
	root string
}

// NewDiskStore creates the root directory if needed and returns the store.
func NewDiskStore(root string) (*DiskStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &DiskStore{root: root}, nil
}

func (s *DiskStore) Save(_ context.Context, name string, r io.Reader) (string, int64, error) {
	path := filepath.Join(s.root, filepath.Base(name))

	f, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create blob: %w", err)
	}

	size, err := io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(path)
		return "", 0, fmt.Errorf("write blob: %w", err)
	}
	return path, size, nil
}

func (s *DiskStore) Open(_ context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blob: %w", err)
	}
	return f, nil
}

func (s *DiskStore) Remove(_ context.Context, path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove blob: %w", err)
	}
	return nil
}
