package sqlite

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"shoplist/internal/storage"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shoplist.db")
	store, err := Open(path, testLogger())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store, path
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("", testLogger()); err == nil {
		t.Fatal("expected an error for an empty path")
	}
}

func TestReadAbsentKey(t *testing.T) {
	store, _ := openTestStore(t)
	_, err := store.Read(context.Background(), storage.ItemsKey)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	blob := []byte(`[{"id":1,"text":"Milk","category":"Dairy","completed":false,"createdAt":"2026-08-01T10:00:00Z"}]`)
	if err := store.Write(ctx, storage.ItemsKey, blob); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := store.Read(ctx, storage.ItemsKey)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(blob) {
		t.Fatalf("expected %s, got %s", blob, got)
	}
}

func TestWriteReplacesValue(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	store.Write(ctx, storage.ThemeKey, []byte("light"))
	if err := store.Write(ctx, storage.ThemeKey, []byte("dark")); err != nil {
		t.Fatalf("second write: %v", err)
	}

	got, err := store.Read(ctx, storage.ThemeKey)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "dark" {
		t.Fatalf("expected replaced value, got %q", got)
	}
}

func TestKeysAreIndependent(t *testing.T) {
	store, _ := openTestStore(t)
	ctx := context.Background()

	store.Write(ctx, storage.ItemsKey, []byte("[]"))
	store.Write(ctx, storage.ThemeKey, []byte("dark"))
	if err := store.Delete(ctx, storage.ItemsKey); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := store.Read(ctx, storage.ItemsKey); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected deleted key to be absent, got %v", err)
	}
	got, err := store.Read(ctx, storage.ThemeKey)
	if err != nil || string(got) != "dark" {
		t.Fatalf("theme key disturbed by items delete: %q, %v", got, err)
	}
}

func TestDeleteAbsentKey(t *testing.T) {
	store, _ := openTestStore(t)
	if err := store.Delete(context.Background(), "nothing-here"); err != nil {
		t.Fatalf("delete of absent key should succeed, got %v", err)
	}
}

func TestValuesSurviveReopen(t *testing.T) {
	store, path := openTestStore(t)
	ctx := context.Background()

	if err := store.Write(ctx, storage.ItemsKey, []byte(`[{"id":1}]`)); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := Open(path, testLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, err := reopened.Read(ctx, storage.ItemsKey)
	if err != nil {
		t.Fatalf("read after reopen: %v", err)
	}
	if string(got) != `[{"id":1}]` {
		t.Fatalf("value changed across reopen: %s", got)
	}
}
