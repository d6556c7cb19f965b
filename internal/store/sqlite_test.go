package store

import (
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clarity.db")

	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	sub := sampleSubmission("sq-1")
	if err := s.Put(sub); err != nil {
		t.Fatalf("Put: %v", err)
	}
	got, ok := s.Get("sq-1")
	if !ok {
		t.Fatal("Get returned not found")
	}
	if got != sub {
		t.Fatalf("round-trip mismatch:\ngot  %+v\nwant %+v", got, sub)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopen: the submission survives the restart.
	s2, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer s2.Close()
	got, ok = s2.Get("sq-1")
	if !ok {
		t.Fatal("submission lost across reopen")
	}
	if !got.CreatedAt.Equal(sub.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, sub.CreatedAt)
	}
	if got.FullName != sub.FullName || got.Email != sub.Email {
		t.Errorf("reloaded submission mismatch: %+v", got)
	}
}

func TestSQLiteStoreUnknownID(t *testing.T) {
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "clarity.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()
	if _, ok := s.Get("missing"); ok {
		t.Fatal("expected miss for unknown id")
	}
}
