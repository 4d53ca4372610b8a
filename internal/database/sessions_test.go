package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"rondo/internal/config"
)

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seqID, err := s.SaveSequence(ctx, tabata())
	if err != nil {
		t.Fatalf("SaveSequence failed: %v", err)
	}

	started := time.Now().UTC().Truncate(time.Second)
	sessID, err := s.StartSession(ctx, seqID, "Tabata", started)
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	ended := started.Add(5 * time.Minute)
	if err := s.FinishSession(ctx, sessID, ended, 8, 16, config.OutcomeCompleted); err != nil {
		t.Fatalf("FinishSession failed: %v", err)
	}

	sessions, err := s.ListSessions(ctx, 10)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("expected 1 session, got %d", len(sessions))
	}
	got := sessions[0]
	if got.SequenceID != seqID || got.SequenceName != "Tabata" {
		t.Fatalf("session identity mismatch: %+v", got)
	}
	if got.Laps != 8 || got.IntervalsDone != 16 || got.Outcome != config.OutcomeCompleted {
		t.Fatalf("session counters mismatch: %+v", got)
	}
	if got.EndedAt == nil {
		t.Fatalf("expected EndedAt to be set")
	}
}

func TestSessionSurvivesSequenceDeletion(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seqID, err := s.SaveSequence(ctx, tabata())
	if err != nil {
		t.Fatalf("SaveSequence failed: %v", err)
	}
	sessID, err := s.StartSession(ctx, seqID, "Tabata", time.Now())
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if err := s.FinishSession(ctx, sessID, time.Now(), 1, 2, config.OutcomeStopped); err != nil {
		t.Fatalf("FinishSession failed: %v", err)
	}
	if err := s.DeleteSequence(ctx, seqID); err != nil {
		t.Fatalf("DeleteSequence failed: %v", err)
	}

	sessions, err := s.ListSessions(ctx, 10)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 1 {
		t.Fatalf("history lost with sequence: %d sessions", len(sessions))
	}
	if sessions[0].SequenceID != 0 {
		t.Fatalf("expected NULL sequence_id after delete, got %d", sessions[0].SequenceID)
	}
	if sessions[0].SequenceName != "Tabata" {
		t.Fatalf("denormalized name lost: %q", sessions[0].SequenceName)
	}
}

func TestFinishSessionUnknownID(t *testing.T) {
	s := openTestStore(t)
	err := s.FinishSession(context.Background(), 404, time.Now(), 0, 0, config.OutcomeStopped)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestListSessionsOrderAndLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		if _, err := s.StartSession(ctx, 0, "adhoc", base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("StartSession %d failed: %v", i, err)
		}
	}
	sessions, err := s.ListSessions(ctx, 3)
	if err != nil {
		t.Fatalf("ListSessions failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("limit ignored: got %d", len(sessions))
	}
	if sessions[0].StartedAt.Before(sessions[1].StartedAt) {
		t.Fatalf("expected newest first")
	}
}
