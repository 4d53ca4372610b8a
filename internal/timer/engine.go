// Package timer implements the interval-sequencing countdown engine: a
// state machine that walks an ordered list of named intervals, optionally
// looping forever and counting laps, with pause/resume that preserves
// remaining time.
//
// Remaining time is always derived from an absolute deadline against the
// injected clock, never by accumulating nominal tick sizes. The host may
// delay any individual tick arbitrarily; the error in the reported remaining
// time is bounded by that one delay instead of the sum of all delays.
package timer

import (
	"sync"
	"time"

	"rondo/internal/config"
	"rondo/internal/models"
	"rondo/internal/util"
)

// Status is the engine's lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusCompleted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusCompleted:
		return "completed"
	}
	return "unknown"
}

// Config carries the engine's collaborators and cadences. Zero-value fields
// get production defaults; all collaborators are optional.
type Config struct {
	Clock          Clock
	Scheduler      Scheduler
	TickInterval   time.Duration
	NotifyInterval time.Duration

	Pulse     Pulse
	Presenter StatusPresenter
	Guard     KeepAwake
}

// Engine runs one interval sequence at a time. All state is guarded by a
// single mutex; public methods and the internal tick both take it, so ticks
// and commands can never interleave mid-mutation.
type Engine struct {
	clock       Clock
	sched       Scheduler
	period      time.Duration
	notifyEvery time.Duration
	pulse       Pulse
	presenter   StatusPresenter
	guard       KeepAwake

	mu         sync.Mutex
	seq        models.Sequence
	status     Status
	index      int
	remaining  time.Duration
	deadline   time.Time
	laps       int
	lastNotify time.Time
	observer   Observer

	// gen invalidates in-flight ticks: every transition that disarms the
	// loop bumps it, and a tick scheduled under an older generation no-ops.
	gen uint64
}

// New creates an Idle engine.
func New(cfg Config) *Engine {
	if cfg.Clock == nil {
		cfg.Clock = SystemClock()
	}
	if cfg.Scheduler == nil {
		cfg.Scheduler = NewScheduler()
	}
	if cfg.TickInterval <= 0 {
		cfg.TickInterval = config.TickInterval
	}
	if cfg.NotifyInterval <= 0 {
		cfg.NotifyInterval = config.NotifyInterval
	}
	return &Engine{
		clock:       cfg.Clock,
		sched:       cfg.Scheduler,
		period:      cfg.TickInterval,
		notifyEvery: cfg.NotifyInterval,
		pulse:       cfg.Pulse,
		presenter:   cfg.Presenter,
		guard:       cfg.Guard,
		index:       -1,
	}
}

// SetObserver installs the single observer, replacing any previous one.
// Passing nil detaches.
func (e *Engine) SetObserver(o Observer) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.observer = o
}

// SetSequence stores an immutable snapshot of seq. Ignored while a run is
// active; stop first.
func (e *Engine) SetSequence(seq models.Sequence) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == StatusRunning || e.status == StatusPaused {
		return
	}
	e.seq = seq.Clone()
}

// Start begins the configured sequence from interval 0 with a fresh lap
// count. No-op if the sequence is empty or a run is already active.
// Completed counts as a ready state: Start after completion restarts.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status == StatusRunning || e.status == StatusPaused {
		return
	}
	if e.seq.Empty() {
		return
	}
	if e.guard != nil {
		util.LogError("keep-awake acquire", e.guard.Acquire())
	}
	e.gen++
	e.laps = 0
	e.lastNotify = time.Time{}
	e.status = StatusRunning
	now := e.clock.Now()
	e.armIntervalLocked(0, now)
	if e.observer != nil {
		e.observer.IntervalChanged(0)
	}
	e.presentLocked(now)
	e.scheduleLocked()
}

// Pause freezes the countdown, cancels the armed tick and records the
// remaining time of the current interval. No-op unless running.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != StatusRunning {
		return
	}
	e.gen++
	e.sched.Cancel()
	rem := e.deadline.Sub(e.clock.Now())
	if rem < 0 {
		rem = 0
	}
	e.remaining = rem
	e.status = StatusPaused
	if e.observer != nil {
		e.observer.Paused()
	}
	e.presentLocked(e.clock.Now())
}

// Resume recomputes the deadline from the frozen remaining time and re-arms
// the loop. The pause duration does not eat into the interval. No-op unless
// paused.
func (e *Engine) Resume() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != StatusPaused {
		return
	}
	e.gen++
	now := e.clock.Now()
	e.deadline = now.Add(e.remaining)
	e.status = StatusRunning
	if e.observer != nil {
		e.observer.Resumed()
	}
	e.presentLocked(now)
	e.scheduleLocked()
}

// Stop cancels any armed tick and returns the engine to Idle. The lap count
// is frozen until the next Start or Reset. Idempotent: a second Stop is a
// silent no-op with no duplicate notifications.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
}

// Reset performs Stop and additionally clears the lap count and the notify
// throttle timestamp, so the next run refreshes its status immediately.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.stopLocked()
	e.laps = 0
	e.lastNotify = time.Time{}
}

// Snapshot is a consistent read of everything a display needs.
type Snapshot struct {
	Status           Status
	Index            int
	IntervalName     string
	IntervalDuration time.Duration
	Remaining        time.Duration
	Laps             int
	Circular         bool
	IntervalCount    int
}

// Snapshot returns the current engine state for rendering. While running,
// Remaining is recomputed against the clock rather than echoing the value of
// the last tick.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap := Snapshot{
		Status:        e.status,
		Index:         e.index,
		Remaining:     e.remaining,
		Laps:          e.laps,
		Circular:      e.seq.Circular,
		IntervalCount: len(e.seq.Intervals),
	}
	if e.status == StatusRunning {
		if rem := e.deadline.Sub(e.clock.Now()); rem > 0 {
			snap.Remaining = rem
		} else {
			snap.Remaining = 0
		}
	}
	if e.index >= 0 && e.index < len(e.seq.Intervals) {
		iv := e.seq.Intervals[e.index]
		snap.IntervalName = iv.Name
		snap.IntervalDuration = iv.Duration
	}
	return snap
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.status
}

// Laps returns the lap count, which survives Stop and clears on Start/Reset.
func (e *Engine) Laps() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.laps
}

// Sequence returns a copy of the engine's sequence snapshot.
func (e *Engine) Sequence() models.Sequence {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.seq.Clone()
}

func (e *Engine) stopLocked() {
	if e.status == StatusIdle {
		return
	}
	wasActive := e.status == StatusRunning || e.status == StatusPaused
	e.gen++
	e.sched.Cancel()
	e.status = StatusIdle
	e.index = -1
	e.remaining = 0
	e.deadline = time.Time{}
	if wasActive && e.guard != nil {
		e.guard.Release()
	}
	if e.observer != nil {
		e.observer.Stopped()
	}
	e.presentLocked(e.clock.Now())
}

// armIntervalLocked makes intervals[i] current and sets its deadline
// relative to now.
func (e *Engine) armIntervalLocked(i int, now time.Time) {
	e.index = i
	e.remaining = e.seq.Intervals[i].Duration
	e.deadline = now.Add(e.remaining)
}

// scheduleLocked arms the next tick under the current generation.
func (e *Engine) scheduleLocked() {
	gen := e.gen
	e.sched.Schedule(e.period, func() { e.tick(gen) })
}

// tick is the countdown check, invoked by the scheduler while running. A
// tick armed under an older generation (stop, pause or reset happened since)
// returns without touching anything.
func (e *Engine) tick(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.status != StatusRunning || gen != e.gen {
		return
	}

	now := e.clock.Now()
	rem := e.deadline.Sub(now)
	if rem > 0 {
		e.remaining = rem
		if e.observer != nil {
			e.observer.Tick(rem)
		}
		if ShouldNotify(now, e.lastNotify, e.notifyEvery) {
			e.presentLocked(now)
		}
		e.scheduleLocked()
		return
	}

	// Interval expired. Clamp, fire the single-shot side effects, then
	// advance, wrap or finish.
	e.remaining = 0
	if e.pulse != nil {
		e.pulse.Pulse()
	}
	completed := e.index
	if e.observer != nil {
		e.observer.IntervalComplete(completed)
	}

	switch {
	case completed+1 < len(e.seq.Intervals):
		e.armIntervalLocked(completed+1, now)
		if e.observer != nil {
			e.observer.IntervalChanged(e.index)
		}
		e.presentLocked(now)
		e.scheduleLocked()
	case e.seq.Circular:
		e.laps++
		if e.observer != nil {
			e.observer.LapChanged(e.laps)
		}
		e.armIntervalLocked(0, now)
		if e.observer != nil {
			e.observer.IntervalChanged(0)
		}
		e.presentLocked(now)
		e.scheduleLocked()
	default:
		e.status = StatusCompleted
		e.index = -1
		e.deadline = time.Time{}
		if e.guard != nil {
			e.guard.Release()
		}
		if e.observer != nil {
			e.observer.SequenceComplete()
		}
		e.presentLocked(now)
	}
}

// presentLocked pushes the current state to the status presenter and records
// the refresh time. Transition paths call it unconditionally; the periodic
// path gates it through ShouldNotify first.
func (e *Engine) presentLocked(now time.Time) {
	if e.presenter == nil {
		return
	}
	update := StatusUpdate{
		Running:   e.status == StatusRunning,
		Remaining: e.remaining,
	}
	if e.index >= 0 && e.index < len(e.seq.Intervals) {
		update.Interval = e.seq.Intervals[e.index].Name
	}
	util.LogError("status refresh", e.presenter.Present(update))
	e.lastNotify = now
}
