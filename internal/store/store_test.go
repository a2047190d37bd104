package store

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/openbudget/budgetview/internal/domain"
)

func TestMemoryStore_MissingKeyReturnsNotFound(t *testing.T) {
	s := NewMemoryStore()

	_, err := s.Get("nope")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get on missing key: got %v, want ErrNotFound", err)
	}
}

func TestMemoryStore_SetThenGet(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Set("k", []byte("v1")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "v1" {
		t.Fatalf("Get: got %q, want %q", got, "v1")
	}
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	s.Set("k", []byte("abc"))

	got, _ := s.Get("k")
	got[0] = 'x'

	again, _ := s.Get("k")
	if string(again) != "abc" {
		t.Fatalf("stored value mutated through returned slice: %q", again)
	}
}

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSQLiteStore_RoundTrip(t *testing.T) {
	s := newSQLiteStore(t)

	if err := s.Set("categories", []byte(`["Salary"]`)); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get("categories")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != `["Salary"]` {
		t.Fatalf("Get: got %q", got)
	}
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := newSQLiteStore(t)

	s.Set("k", []byte("old"))
	if err := s.Set("k", []byte("new")); err != nil {
		t.Fatalf("second Set: %v", err)
	}
	got, err := s.Get("k")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != "new" {
		t.Fatalf("Get after overwrite: got %q, want %q", got, "new")
	}
}

func TestSQLiteStore_MissingKeyReturnsNotFound(t *testing.T) {
	s := newSQLiteStore(t)

	_, err := s.Get("absent")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get on missing key: got %v, want ErrNotFound", err)
	}
}

func TestSQLiteStore_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "test.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("NewSQLiteStore with nested path: %v", err)
	}
	defer s.Close()

	if err := s.Set("k", []byte("v")); err != nil {
		t.Fatalf("Set: %v", err)
	}
}
