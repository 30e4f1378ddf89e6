package folders

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
)

type fakeStore struct {
	existing    map[string]string // name -> id
	findCalls   int
	createCalls int
	findErr     error
	createErr   error
}

func (f *fakeStore) FindFolder(ctx context.Context, name, parent string) (string, bool, error) {
	f.findCalls++
	if f.findErr != nil {
		return "", false, f.findErr
	}
	id, ok := f.existing[name]
	return id, ok, nil
}

func (f *fakeStore) CreateFolder(ctx context.Context, name, parent string) (string, error) {
	f.createCalls++
	if f.createErr != nil {
		return "", f.createErr
	}
	return "created-" + name, nil
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolveReusesExistingFolder(t *testing.T) {
	store := &fakeStore{existing: map[string]string{"Poetry": "folder-1"}}
	r := New(store, "", discard())

	id, err := r.Resolve(context.Background(), "Poetry")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if id != "folder-1" {
		t.Fatalf("Resolve() = %q, want folder-1", id)
	}
	if store.createCalls != 0 {
		t.Errorf("expected no creation, got %d calls", store.createCalls)
	}
}

func TestResolveCreatesMissingFolder(t *testing.T) {
	store := &fakeStore{}
	r := New(store, "", discard())

	id, err := r.Resolve(context.Background(), "Recipes")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if id != "created-Recipes" {
		t.Fatalf("Resolve() = %q", id)
	}
	if store.createCalls != 1 {
		t.Errorf("createCalls = %d, want 1", store.createCalls)
	}
}

func TestResolveMemoizesPerRun(t *testing.T) {
	store := &fakeStore{}
	r := New(store, "", discard())

	first, err := r.Resolve(context.Background(), "Work")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	second, err := r.Resolve(context.Background(), "Work")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if first != second {
		t.Fatalf("ids differ: %q vs %q", first, second)
	}
	if store.findCalls != 1 || store.createCalls != 1 {
		t.Errorf("findCalls = %d, createCalls = %d, want 1 and 1", store.findCalls, store.createCalls)
	}
}

func TestResolveSurfacesLookupError(t *testing.T) {
	store := &fakeStore{findErr: errors.New("quota exceeded")}
	r := New(store, "", discard())

	if _, err := r.Resolve(context.Background(), "Work"); err == nil {
		t.Fatal("expected error")
	}
	// Failed resolutions are not cached; a later call retries the lookup.
	store.findErr = nil
	if _, err := r.Resolve(context.Background(), "Work"); err != nil {
		t.Fatalf("second Resolve() error = %v", err)
	}
	if store.findCalls != 2 {
		t.Errorf("findCalls = %d, want 2", store.findCalls)
	}
}

func TestResolveSurfacesCreateError(t *testing.T) {
	store := &fakeStore{createErr: errors.New("permission denied")}
	r := New(store, "parent-1", discard())

	if _, err := r.Resolve(context.Background(), "Work"); err == nil {
		t.Fatal("expected error")
	}
}
