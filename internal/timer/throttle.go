package timer

import "time"

// ShouldNotify reports whether enough wall-clock time has passed since the
// last status refresh to justify another one. A zero last timestamp always
// allows a refresh. The caller records the refresh time only when this
// returns true; transition-triggered refreshes bypass the throttle entirely.
func ShouldNotify(now, last time.Time, min time.Duration) bool {
	return last.IsZero() || now.Sub(last) >= min
}
