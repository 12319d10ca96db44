package cache

import (
	"testing"
)

func TestFileCache_RoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}

	key := DocumentKey([]byte(`{"elements":[]}`), map[string]any{"views": true})
	doc := []byte("<model/>")

	if _, hit, err := c.Get(key); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v; want miss", hit, err)
	}

	if err := c.Set(key, doc); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	data, hit, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !hit {
		t.Fatal("Get() = miss after Set")
	}
	if string(data) != string(doc) {
		t.Errorf("Get() = %q, want %q", data, doc)
	}

	if err := c.Delete(key); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, hit, _ := c.Get(key); hit {
		t.Error("Get() = hit after Delete")
	}
}

func TestFileCache_DeleteMissing(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache() error = %v", err)
	}
	if err := c.Delete("export:nope"); err != nil {
		t.Errorf("Delete(missing) error = %v, want nil", err)
	}
}

func TestDocumentKey_SensitiveToInputs(t *testing.T) {
	base := DocumentKey([]byte("model-a"), map[string]bool{"views": true})

	if got := DocumentKey([]byte("model-b"), map[string]bool{"views": true}); got == base {
		t.Error("DocumentKey() identical for different models")
	}
	if got := DocumentKey([]byte("model-a"), map[string]bool{"views": false}); got == base {
		t.Error("DocumentKey() identical for different options")
	}
	if got := DocumentKey([]byte("model-a"), map[string]bool{"views": true}); got != base {
		t.Error("DocumentKey() differs for identical inputs")
	}
}

func TestNullCache(t *testing.T) {
	c := NewNullCache()

	if err := c.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, hit, err := c.Get("k"); err != nil || hit {
		t.Errorf("Get() = hit %v, err %v; want permanent miss", hit, err)
	}
}
