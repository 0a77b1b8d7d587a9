package jsonstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/toilet-monitor/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), "nested", "checklist.json"))
}

func TestStore_GetMissingFile(t *testing.T) {
	store := newTestStore(t)

	value, ok, err := store.Get(context.Background(), domain.ChecklistStorageKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok || value != "" {
		t.Errorf("Get() = (%q, %v), want empty slot", value, ok)
	}
}

func TestStore_SetAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	value := `[{"id":1,"label":"Menyikat lantai","status":"PENDING","note":"a \"b\", c"}]`

	if err := store.Set(ctx, domain.ChecklistStorageKey, value); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, ok, err := store.Get(ctx, domain.ChecklistStorageKey)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() reported empty slot")
	}
	if got != value {
		t.Errorf("Get() = %q, want %q", got, value)
	}

	// A fresh Store on the same path sees the value.
	got, _, err = New(store.Path()).Get(ctx, domain.ChecklistStorageKey)
	if err != nil {
		t.Fatalf("Get() on reopened store error = %v", err)
	}
	if got != value {
		t.Errorf("reopened Get() = %q, want %q", got, value)
	}
}

func TestStore_SlotsAreIndependent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, domain.ChecklistStorageKey, "a"); err != nil {
		t.Fatal(err)
	}
	if err := store.Set(ctx, domain.MetadataStorageKey, "b"); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, domain.MetadataStorageKey); err != nil {
		t.Fatal(err)
	}

	if _, ok, _ := store.Get(ctx, domain.MetadataStorageKey); ok {
		t.Error("deleted slot still present")
	}
	if v, ok, _ := store.Get(ctx, domain.ChecklistStorageKey); !ok || v != "a" {
		t.Errorf("other slot = (%q, %v), want (a, true)", v, ok)
	}

	// Deleting an empty slot is not an error.
	if err := store.Delete(ctx, "missing"); err != nil {
		t.Errorf("Delete() on empty slot error = %v", err)
	}
}

func TestStore_FileFormat(t *testing.T) {
	store := newTestStore(t)
	if err := store.Set(context.Background(), "k", "v"); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	var data map[string]map[string]string
	if err := json.Unmarshal(content, &data); err != nil {
		t.Fatalf("store file is not JSON: %v", err)
	}
	if data["slots"]["k"] != "v" {
		t.Errorf("slots = %v", data["slots"])
	}
	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Error("temp file left behind")
	}
}

func TestStore_CorruptedFile(t *testing.T) {
	store := newTestStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte("{broken"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, _, err := store.Get(context.Background(), "k"); err == nil {
		t.Error("Get() on corrupted file should fail")
	}
	if err := store.Set(context.Background(), "k", "v"); err == nil {
		t.Error("Set() on corrupted file should fail")
	}
}
