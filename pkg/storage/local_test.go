package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newLocal(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestLocalStorageWriteReadDelete(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	if err := s.Write(ctx, "tasks/a.yaml", []byte("title: a")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := s.Read(ctx, "tasks/a.yaml")
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(data) != "title: a" {
		t.Fatalf("Read = %q, want %q", data, "title: a")
	}

	exists, err := s.Exists(ctx, "tasks/a.yaml")
	if err != nil || !exists {
		t.Fatalf("Exists = %v, %v; want true, nil", exists, err)
	}

	if err := s.Delete(ctx, "tasks/a.yaml"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := s.Read(ctx, "tasks/a.yaml"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Read after Delete = %v, want ErrNotFound", err)
	}
	if err := s.Delete(ctx, "tasks/a.yaml"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("second Delete = %v, want ErrNotFound", err)
	}
}

func TestLocalStorageOverwrite(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	if err := s.Write(ctx, "k", []byte("v1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(ctx, "k", []byte("v2")); err != nil {
		t.Fatal(err)
	}
	data, err := s.Read(ctx, "k")
	if err != nil || string(data) != "v2" {
		t.Fatalf("Read = %q, %v; want v2, nil", data, err)
	}
}

func TestLocalStorageList(t *testing.T) {
	s := newLocal(t)
	ctx := context.Background()

	// listing a prefix that was never written is empty, not an error
	paths, err := s.List(ctx, "tasks")
	if err != nil || len(paths) != 0 {
		t.Fatalf("List(empty) = %v, %v; want empty, nil", paths, err)
	}

	for _, name := range []string{"tasks/a.yaml", "tasks/b.yaml", "users/u.yaml"} {
		if err := s.Write(ctx, name, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	paths, err = s.List(ctx, "tasks")
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("List(tasks) = %v, want 2 entries", paths)
	}
	for _, p := range paths {
		if filepath.Dir(p) != "tasks" {
			t.Errorf("listed path %q outside prefix", p)
		}
	}
}

func TestLocalStorageLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Write(context.Background(), "k", []byte("v")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ".tmp" {
			t.Fatalf("temp file %q left behind", e.Name())
		}
	}
}
