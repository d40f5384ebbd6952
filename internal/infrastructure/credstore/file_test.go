package credstore

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_ReadEmpty(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))

	token, err := s.Read()
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if token != "" {
		t.Fatalf("expected empty token, got %q", token)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	s := NewFileStore(path)

	if err := s.Write("tok-123"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	token, err := s.Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if token != "tok-123" {
		t.Fatalf("expected tok-123, got %q", token)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Fatalf("expected 0600 permissions, got %o", perm)
	}
}

func TestFileStore_Overwrite(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))

	_ = s.Write("old")
	if err := s.Write("new"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}
	token, _ := s.Read()
	if token != "new" {
		t.Fatalf("expected new, got %q", token)
	}
}

func TestFileStore_ClearIdempotent(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "token"))

	_ = s.Write("tok")
	if err := s.Clear(); err != nil {
		t.Fatalf("first clear failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("second clear failed: %v", err)
	}
	token, _ := s.Read()
	if token != "" {
		t.Fatalf("expected empty after clear, got %q", token)
	}
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()

	if err := s.Write("tok"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	token, _ := s.Read()
	if token != "tok" {
		t.Fatalf("expected tok, got %q", token)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	token, _ = s.Read()
	if token != "" {
		t.Fatalf("expected empty after clear, got %q", token)
	}
}
