package timer

import "time"

// Clock is the engine's time source. time.Time carries a monotonic reading,
// so deadline arithmetic is immune to wall-clock adjustments. Tests inject a
// manually advanced fake.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real clock.
func SystemClock() Clock { return systemClock{} }
