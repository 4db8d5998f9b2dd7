package store

import (
	"context"
	"errors"
	"testing"
)

func TestFSStoreRoundTrip(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFSStore() error = %v", err)
	}
	ctx := context.Background()

	payload := []byte(`{"tagName":"Panel","version":"1.0.0"}`)
	if err := s.Save(ctx, "welcome", payload); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	got, err := s.Load(ctx, "welcome")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if string(got) != string(payload) {
		t.Errorf("Load() = %s, want %s", got, payload)
	}
}

func TestFSStoreNotFound(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	_, err = s.Load(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestFSStoreList(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	for _, name := range []string{"zeta", "alpha"} {
		if err := s.Save(ctx, name, []byte("{}")); err != nil {
			t.Fatal(err)
		}
	}
	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("List() = %v, want [alpha zeta]", names)
	}
}

func TestFSStoreRejectsPathTraversal(t *testing.T) {
	s, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"", "../escape", "a/b", `a\b`} {
		if _, err := s.Load(context.Background(), name); err == nil {
			t.Errorf("Load(%q) succeeded, want error", name)
		}
	}
}
