package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"rondo/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(ctx, path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Logf("close failed: %v", err)
		}
	})
	return s
}

func tabata() models.Sequence {
	return models.Sequence{
		Name:     "Tabata",
		Circular: true,
		Intervals: []models.Interval{
			{Duration: 20 * time.Second, Name: "Work"},
			{Duration: 10 * time.Second, Name: "Rest"},
		},
	}
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)
	seqs, err := s.ListSequences(context.Background())
	if err != nil {
		t.Fatalf("ListSequences on fresh store failed: %v", err)
	}
	if len(seqs) != 0 {
		t.Fatalf("expected empty store, got %d sequences", len(seqs))
	}
}

func TestOpenBadPath(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing", "nested", "test.db"))
	if err == nil {
		t.Fatalf("expected error for unreachable path")
	}
}
