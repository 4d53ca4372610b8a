package timer

import (
	"sync"
	"time"
)

// Scheduler fires a callback once after a delay and can be canceled before
// it fires. The engine re-arms it after each tick, so the cadence is "period
// after the previous firing finished" rather than fixed-rate; a delayed tick
// never causes a burst of catch-up firings.
//
// Cancel is best-effort at the timer level: a callback already in flight may
// still run. The engine guards against that with a generation counter checked
// at the top of every tick.
type Scheduler interface {
	Schedule(d time.Duration, fn func())
	Cancel()
}

// TimerScheduler is the production Scheduler, built on time.AfterFunc. At
// most one invocation is armed at a time; Schedule replaces any pending one.
type TimerScheduler struct {
	mu    sync.Mutex
	armed *time.Timer
}

// NewScheduler returns an unarmed TimerScheduler.
func NewScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

// Schedule arms fn to run once after d, replacing any pending invocation.
func (s *TimerScheduler) Schedule(d time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed != nil {
		s.armed.Stop()
	}
	s.armed = time.AfterFunc(d, fn)
}

// Cancel stops the pending invocation, if any.
func (s *TimerScheduler) Cancel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.armed != nil {
		s.armed.Stop()
		s.armed = nil
	}
}
