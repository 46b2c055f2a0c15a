package files

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	fileURL, err := store.Save(strings.NewReader("fbr challan pdf bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !strings.HasPrefix(fileURL, "/uploads/") {
		t.Errorf("expected /uploads/ URL, got %q", fileURL)
	}

	onDisk := filepath.Join(dir, strings.TrimPrefix(fileURL, "/uploads/"))
	data, err := os.ReadFile(onDisk)
	if err != nil {
		t.Fatalf("stored file unreadable: %v", err)
	}
	if string(data) != "fbr challan pdf bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestStore_Save_AnonymisesName(t *testing.T) {
	store, err := NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}

	first, _ := store.Save(strings.NewReader("a"))
	second, _ := store.Save(strings.NewReader("a"))
	if first == second {
		t.Error("every upload must get a distinct name")
	}
}

func TestNewStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")

	if _, err := NewStore(dir); err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Errorf("upload dir not created: %v", err)
	}
}
