// internal/storage/export_store_test.go
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	store, err := NewExportStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewExportStore: %v", err)
	}

	content := []byte("scene prompts go here")
	path, size, err := store.Save("demo-export.txt", content)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if size != int64(len(content)) {
		t.Errorf("size = %d, want %d", size, len(content))
	}
	if filepath.Base(path) != "demo-export.txt" {
		t.Errorf("unexpected path %q", path)
	}

	loaded, err := store.Load("demo-export.txt")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(loaded) != string(content) {
		t.Errorf("loaded content mismatch: %q", loaded)
	}
}

func TestSaveOverwriteInvalidatesCache(t *testing.T) {
	store, err := NewExportStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewExportStore: %v", err)
	}

	store.Save("file.txt", []byte("first"))
	if _, err := store.Load("file.txt"); err != nil {
		t.Fatalf("Load: %v", err)
	}

	store.Save("file.txt", []byte("second"))
	loaded, err := store.Load("file.txt")
	if err != nil {
		t.Fatalf("Load after overwrite: %v", err)
	}
	if string(loaded) != "second" {
		t.Errorf("stale cache returned %q", loaded)
	}
}

func TestSafePathRejectsTraversal(t *testing.T) {
	store, err := NewExportStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewExportStore: %v", err)
	}

	for _, name := range []string{"../escape.txt", "a/b.txt", ".", ".."} {
		if _, _, err := store.Save(name, []byte("x")); err == nil {
			t.Errorf("Save(%q) should be rejected", name)
		}
		if _, err := store.Load(name); err == nil {
			t.Errorf("Load(%q) should be rejected", name)
		}
	}
}

func TestListSortsNewestFirstAndSkipsTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewExportStore(dir)
	if err != nil {
		t.Fatalf("NewExportStore: %v", err)
	}

	store.Save("older.txt", []byte("a"))
	// 保证修改时间可区分
	past := time.Now().Add(-time.Hour)
	os.Chtimes(filepath.Join(dir, "older.txt"), past, past)
	store.Save("newer.txt", []byte("b"))
	os.WriteFile(filepath.Join(dir, "leftover.tmp"), []byte("x"), 0644)

	files, err := store.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "newer.txt" || files[1].Name != "older.txt" {
		t.Errorf("unexpected order: %s, %s", files[0].Name, files[1].Name)
	}
}

func TestDeleteRemovesFile(t *testing.T) {
	store, err := NewExportStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewExportStore: %v", err)
	}

	store.Save("gone.txt", []byte("x"))
	if err := store.Delete("gone.txt"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if store.Exists("gone.txt") {
		t.Error("file should be gone")
	}
	if err := store.Delete("gone.txt"); err == nil {
		t.Error("deleting a missing file should fail")
	}
}
