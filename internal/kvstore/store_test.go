package kvstore

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestConnectUnsupportedURL(t *testing.T) {
	tests := []string{
		"mysql://user@localhost/db",
		"catalog.db",
		"",
	}

	for _, url := range tests {
		t.Run(url, func(t *testing.T) {
			_, err := Connect(url, false)
			if !errors.Is(err, ErrUnsupportedURL) {
				t.Errorf("Expected ErrUnsupportedURL for %q, got %v", url, err)
			}
		})
	}
}

func TestOpenMemory(t *testing.T) {
	store, err := Open(MemoryURL, "", false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, ok := store.(*MemoryStore); !ok {
		t.Errorf("Expected *MemoryStore, got %T", store)
	}
}

func TestOpenSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	store, err := Open("sqlite://"+path, "_test_kv", false)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := store.Set("products", "[]"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A second handle on the same file sees the value
	reopened, err := Open("sqlite://"+path, "_test_kv", false)
	if err != nil {
		t.Fatalf("Reopen failed: %v", err)
	}
	value, found, err := reopened.Get("products")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !found || value != "[]" {
		t.Errorf("Expected persisted '[]', got (%q, %v)", value, found)
	}
}
