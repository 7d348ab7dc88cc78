package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStore_SaveOpenRemove(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}
	ctx := context.Background()

	path, size, err := store.Save(ctx, "blob-1", strings.NewReader("content"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if size != int64(len("content")) {
		t.Fatalf("unexpected size: %d", size)
	}

	rc, err := store.Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	data, err := io.ReadAll(rc)
	_ = rc.Close()
	if err != nil {
		t.Fatalf("reading blob: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected content: %q", data)
	}

	if err := store.Remove(ctx, path); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("blob still on disk after Remove")
	}

	// Removing an already removed blob is not an error.
	if err := store.Remove(ctx, path); err != nil {
		t.Fatalf("second Remove must be a no-op, got %v", err)
	}
}

func TestDiskStore_ConfinesPathsToRoot(t *testing.T) {
	root := t.TempDir()
	store, err := NewDiskStore(root)
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}

	// A hostile storage name must not escape the root directory.
	path, _, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	rel, err := filepath.Rel(root, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		t.Fatalf("stored path %q escapes root %q", path, root)
	}
}

func TestNewDiskStore_CreatesRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested", "uploads")
	if _, err := NewDiskStore(root); err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		t.Fatalf("root directory not created: %v", err)
	}
}
