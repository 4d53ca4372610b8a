package database

import (
	"context"
	"time"

	"rondo/internal/models"
)

// SequenceRepository defines sequence-preset operations.
type SequenceRepository interface {
	ListSequences(ctx context.Context) ([]models.Sequence, error)
	GetSequence(ctx context.Context, id int64) (models.Sequence, error)
	SaveSequence(ctx context.Context, seq models.Sequence) (int64, error)
	DeleteSequence(ctx context.Context, id int64) error
	DuplicateSequence(ctx context.Context, id int64, newName string) (int64, error)
}

// SessionRepository defines session-history operations.
type SessionRepository interface {
	StartSession(ctx context.Context, sequenceID int64, sequenceName string, startedAt time.Time) (int64, error)
	FinishSession(ctx context.Context, id int64, endedAt time.Time, laps, intervalsDone int, outcome string) error
	ListSessions(ctx context.Context, limit int) ([]models.Session, error)
}

// Repository combines all repository interfaces.
//
//go:generate mockgen -destination=../tui/mock_store_test.go -package=tui rondo/internal/database Repository
type Repository interface {
	SequenceRepository
	SessionRepository
}

var _ Repository = (*Store)(nil)
