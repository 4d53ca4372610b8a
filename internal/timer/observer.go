package timer

import "time"

// Observer receives every observable change from the engine. The engine has
// at most one observer; SetObserver replaces, never stacks. Callbacks are
// delivered from inside the engine's critical section on whichever goroutine
// triggered the change, so implementations must return quickly and must not
// call back into the engine.
type Observer interface {
	// Tick reports the freshly computed remaining time of the current
	// interval, once per scheduling cadence while running.
	Tick(remaining time.Duration)

	// IntervalComplete fires once when the interval at index expires.
	IntervalComplete(index int)

	// SequenceComplete fires once when a non-circular sequence exhausts
	// its last interval.
	SequenceComplete()

	// LapChanged fires each time a circular sequence wraps, with the new
	// lap count.
	LapChanged(count int)

	// IntervalChanged fires whenever a new interval becomes current,
	// including interval 0 on Start.
	IntervalChanged(index int)

	Paused()
	Resumed()
	Stopped()
}

// StatusUpdate is the payload handed to the status presenter: everything a
// persistent, externally visible display needs.
type StatusUpdate struct {
	Running   bool
	Interval  string
	Remaining time.Duration
}

// Pulse is the haptic-feedback collaborator: a single shot fired once per
// interval completion. The engine neither waits for it nor retries it.
type Pulse interface {
	Pulse()
}

// StatusPresenter renders a persistent status display. Present is called
// throttled while running and unthrottled on every state transition.
// Failures are logged and otherwise ignored; the countdown never depends on
// the display.
type StatusPresenter interface {
	Present(s StatusUpdate) error
}

// KeepAwake is a best-effort guarantee that the process keeps running while
// a timer is active. Acquisition failure is not fatal; the engine continues
// without it.
type KeepAwake interface {
	Acquire() error
	Release()
}
