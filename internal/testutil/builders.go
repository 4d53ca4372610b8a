package testutil

import (
	"time"

	"rondo/internal/models"
)

// SequenceBuilder provides a fluent API for creating test sequences.
type SequenceBuilder struct {
	seq models.Sequence
}

func NewSequence() *SequenceBuilder {
	return &SequenceBuilder{
		seq: models.Sequence{
			Name: "Test Sequence",
			Intervals: []models.Interval{
				{Duration: 3 * time.Second, Name: "A"},
				{Duration: 2 * time.Second, Name: "B"},
			},
		},
	}
}

func (b *SequenceBuilder) WithID(id int64) *SequenceBuilder {
	b.seq.ID = id
	return b
}

func (b *SequenceBuilder) WithName(name string) *SequenceBuilder {
	b.seq.Name = name
	return b
}

func (b *SequenceBuilder) Circular() *SequenceBuilder {
	b.seq.Circular = true
	return b
}

func (b *SequenceBuilder) WithIntervals(intervals ...models.Interval) *SequenceBuilder {
	b.seq.Intervals = intervals
	return b
}

func (b *SequenceBuilder) Build() models.Sequence {
	return b.seq.Clone()
}

// SessionBuilder provides a fluent API for creating test sessions.
type SessionBuilder struct {
	session models.Session
}

func NewSession() *SessionBuilder {
	return &SessionBuilder{
		session: models.Session{
			SequenceName: "Test Sequence",
			StartedAt:    time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
			Outcome:      "completed",
		},
	}
}

func (b *SessionBuilder) WithName(name string) *SessionBuilder {
	b.session.SequenceName = name
	return b
}

func (b *SessionBuilder) WithLaps(n int) *SessionBuilder {
	b.session.Laps = n
	return b
}

func (b *SessionBuilder) WithIntervalsDone(n int) *SessionBuilder {
	b.session.IntervalsDone = n
	return b
}

func (b *SessionBuilder) WithOutcome(outcome string) *SessionBuilder {
	b.session.Outcome = outcome
	return b
}

func (b *SessionBuilder) Ended(at time.Time) *SessionBuilder {
	b.session.EndedAt = &at
	return b
}

func (b *SessionBuilder) Build() models.Session {
	return b.session
}
