package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"rondo/internal/models"
)

// ListSequences returns all stored sequences with their intervals, newest
// first.
func (s *Store) ListSequences(ctx context.Context) ([]models.Sequence, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, circular, created_at
		FROM sequences
		ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, wrapSequenceErr("list", 0, err)
	}
	defer rows.Close()

	var seqs []models.Sequence
	for rows.Next() {
		var seq models.Sequence
		if err := rows.Scan(&seq.ID, &seq.Name, &seq.Circular, &seq.CreatedAt); err != nil {
			return nil, wrapSequenceErr("list", 0, err)
		}
		seqs = append(seqs, seq)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSequenceErr("list", 0, err)
	}
	for i := range seqs {
		intervals, err := s.loadIntervals(ctx, seqs[i].ID)
		if err != nil {
			return nil, err
		}
		seqs[i].Intervals = intervals
	}
	return seqs, nil
}

// GetSequence loads one sequence with its intervals.
func (s *Store) GetSequence(ctx context.Context, id int64) (models.Sequence, error) {
	var seq models.Sequence
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, circular, created_at
		FROM sequences WHERE id = ?`, id).
		Scan(&seq.ID, &seq.Name, &seq.Circular, &seq.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return seq, wrapSequenceErr("get", id, ErrNotFound)
	}
	if err != nil {
		return seq, wrapSequenceErr("get", id, err)
	}
	seq.Intervals, err = s.loadIntervals(ctx, id)
	return seq, err
}

func (s *Store) loadIntervals(ctx context.Context, sequenceID int64) ([]models.Interval, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, duration_ms
		FROM intervals
		WHERE sequence_id = ?
		ORDER BY position ASC`, sequenceID)
	if err != nil {
		return nil, wrapSequenceErr("load intervals", sequenceID, err)
	}
	defer rows.Close()

	var intervals []models.Interval
	for rows.Next() {
		var name string
		var ms int64
		if err := rows.Scan(&name, &ms); err != nil {
			return nil, wrapSequenceErr("load intervals", sequenceID, err)
		}
		intervals = append(intervals, models.Interval{
			Name:     name,
			Duration: time.Duration(ms) * time.Millisecond,
		})
	}
	return intervals, rows.Err()
}

// SaveSequence inserts seq when its ID is zero, otherwise replaces the
// stored name, circular flag and interval list in one transaction. Returns
// the sequence ID.
func (s *Store) SaveSequence(ctx context.Context, seq models.Sequence) (int64, error) {
	if err := seq.Validate(); err != nil {
		return 0, wrapSequenceErr("save", seq.ID, err)
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, wrapSequenceErr("save", seq.ID, err)
	}
	defer tx.Rollback()

	id := seq.ID
	if id == 0 {
		res, err := tx.ExecContext(ctx,
			"INSERT INTO sequences (name, circular) VALUES (?, ?)",
			seq.Name, seq.Circular)
		if err != nil {
			return 0, wrapSequenceErr("save", 0, err)
		}
		if id, err = res.LastInsertId(); err != nil {
			return 0, wrapSequenceErr("save", 0, err)
		}
	} else {
		res, err := tx.ExecContext(ctx,
			"UPDATE sequences SET name = ?, circular = ? WHERE id = ?",
			seq.Name, seq.Circular, id)
		if err != nil {
			return 0, wrapSequenceErr("save", id, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, wrapSequenceErr("save", id, err)
		}
		if n == 0 {
			return 0, wrapSequenceErr("save", id, ErrNotFound)
		}
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM intervals WHERE sequence_id = ?", id); err != nil {
			return 0, wrapSequenceErr("save", id, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO intervals (sequence_id, position, name, duration_ms) VALUES (?, ?, ?, ?)")
	if err != nil {
		return 0, wrapSequenceErr("save", id, err)
	}
	defer stmt.Close()
	for pos, iv := range seq.Intervals {
		if _, err := stmt.ExecContext(ctx, id, pos, iv.Name, iv.Duration.Milliseconds()); err != nil {
			return 0, wrapSequenceErr("save", id, fmt.Errorf("interval %d: %w", pos, err))
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, wrapSequenceErr("save", id, err)
	}
	return id, nil
}

// DeleteSequence removes a sequence; its intervals cascade.
func (s *Store) DeleteSequence(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM sequences WHERE id = ?", id)
	if err != nil {
		return wrapSequenceErr("delete", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return wrapSequenceErr("delete", id, err)
	}
	if n == 0 {
		return wrapSequenceErr("delete", id, ErrNotFound)
	}
	return nil
}

// DuplicateSequence copies a sequence under a new name and returns the copy's
// ID.
func (s *Store) DuplicateSequence(ctx context.Context, id int64, newName string) (int64, error) {
	seq, err := s.GetSequence(ctx, id)
	if err != nil {
		return 0, err
	}
	seq.ID = 0
	seq.Name = newName
	return s.SaveSequence(ctx, seq)
}
