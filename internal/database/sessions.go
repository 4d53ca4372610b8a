package database

import (
	"context"
	"time"

	"rondo/internal/models"
)

// StartSession records the beginning of a run and returns the session ID.
// The sequence name is denormalized so history survives sequence deletion.
func (s *Store) StartSession(ctx context.Context, sequenceID int64, sequenceName string, startedAt time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (sequence_id, sequence_name, started_at)
		VALUES (?, ?, ?)`,
		nullableID(sequenceID), sequenceName, startedAt)
	if err != nil {
		return 0, wrapSessionErr("start", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSessionErr("start", 0, err)
	}
	return id, nil
}

// FinishSession closes a session with its final counters and outcome.
func (s *Store) FinishSession(ctx context.Context, id int64, endedAt time.Time, laps, intervalsDone int, outcome string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE sessions
		SET ended_at = ?, laps = ?, intervals_done = ?, outcome = ?
		WHERE id = ?`,
		endedAt, laps, intervalsDone, outcome, id)
	if err != nil {
		return wrapSessionErr("finish", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapSessionErr("finish", id, err)
	}
	if n == 0 {
		return wrapSessionErr("finish", id, ErrNotFound)
	}
	return nil
}

// ListSessions returns the most recent sessions, newest first.
func (s *Store) ListSessions(ctx context.Context, limit int) ([]models.Session, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, sequence_id, sequence_name, started_at, ended_at, laps, intervals_done, outcome
		FROM sessions
		ORDER BY started_at DESC, id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, wrapSessionErr("list", 0, err)
	}
	defer rows.Close()

	var sessions []models.Session
	for rows.Next() {
		var sess models.Session
		var seqID *int64
		if err := rows.Scan(&sess.ID, &seqID, &sess.SequenceName, &sess.StartedAt,
			&sess.EndedAt, &sess.Laps, &sess.IntervalsDone, &sess.Outcome); err != nil {
			return nil, wrapSessionErr("list", 0, err)
		}
		if seqID != nil {
			sess.SequenceID = *seqID
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}
