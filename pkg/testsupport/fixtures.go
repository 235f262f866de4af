package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-animalpage/pkg/animal"
)

// LoadCollection reads a data fixture into an animal.Collection. Testing
// helpers fail the test on error to keep table tests concise.
func LoadCollection(t *testing.T, path string) animal.Collection {
	t.Helper()

	collection, err := LoadCollectionFromPath(path)
	if err != nil {
		t.Fatalf("load collection: %v", err)
	}
	return collection
}

// LoadCollectionFromPath returns a Collection without requiring testing.T, so
// callers can wire fixtures in setup functions.
func LoadCollectionFromPath(path string) (animal.Collection, error) {
	if path == "" {
		return animal.Collection{}, errors.New("testsupport: collection path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return animal.Collection{}, fmt.Errorf("testsupport: read collection: %w", err)
	}
	collection, err := animal.ParseCollection(data)
	if err != nil {
		return animal.Collection{}, fmt.Errorf("testsupport: parse collection: %w", err)
	}
	return collection, nil
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// WriteFile writes a fixture file under dir and returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
