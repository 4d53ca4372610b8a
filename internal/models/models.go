package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrZeroDuration is returned by Interval.Validate for intervals that would
// expire the moment they start. The engine itself tolerates them; the editor
// refuses to save them.
var ErrZeroDuration = errors.New("interval duration must be positive")

// ErrEmptyName is returned when a sequence is saved without a name.
var ErrEmptyName = errors.New("sequence name must not be empty")

// Interval is one timed segment of a sequence. Immutable value.
type Interval struct {
	Duration time.Duration
	Name     string
}

// Validate applies the editor-facing policy: durations must be strictly
// positive. Negative durations are rejected outright.
func (i Interval) Validate() error {
	if i.Duration <= 0 {
		return fmt.Errorf("interval %q: %w", i.Name, ErrZeroDuration)
	}
	return nil
}

// Sequence is an ordered list of intervals plus a circular flag. When
// Circular is true the timer wraps from the last interval back to the first,
// counting laps.
type Sequence struct {
	ID        int64
	Name      string
	Intervals []Interval
	Circular  bool
	CreatedAt time.Time
}

// Clone returns a deep copy. The engine snapshots the sequence it is given so
// later edits to the caller's slice cannot affect a running timer.
func (s Sequence) Clone() Sequence {
	out := s
	out.Intervals = append([]Interval(nil), s.Intervals...)
	return out
}

// Empty reports whether the sequence has no intervals.
func (s Sequence) Empty() bool { return len(s.Intervals) == 0 }

// Total is the wall-clock length of one full traversal.
func (s Sequence) Total() time.Duration {
	var sum time.Duration
	for _, iv := range s.Intervals {
		sum += iv.Duration
	}
	return sum
}

// Validate applies the editor policy to the whole sequence.
func (s Sequence) Validate() error {
	if s.Name == "" {
		return ErrEmptyName
	}
	for _, iv := range s.Intervals {
		if err := iv.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Session records one completed or aborted run of a sequence.
type Session struct {
	ID            int64
	SequenceID    int64
	SequenceName  string
	StartedAt     time.Time
	EndedAt       *time.Time
	Laps          int
	IntervalsDone int
	Outcome       string // completed, stopped
}
