package timer

import (
	"testing"
	"time"
)

func TestSchedulerFiresOnce(t *testing.T) {
	s := NewScheduler()
	fired := make(chan struct{}, 1)
	s.Schedule(5*time.Millisecond, func() { fired <- struct{}{} })
	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatalf("scheduled callback never fired")
	}
	select {
	case <-fired:
		t.Fatalf("callback fired more than once")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestSchedulerCancelPreventsFiring(t *testing.T) {
	s := NewScheduler()
	fired := make(chan struct{}, 1)
	s.Schedule(30*time.Millisecond, func() { fired <- struct{}{} })
	s.Cancel()
	select {
	case <-fired:
		t.Fatalf("canceled callback fired")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestScheduleReplacesPending(t *testing.T) {
	s := NewScheduler()
	results := make(chan string, 2)
	s.Schedule(30*time.Millisecond, func() { results <- "first" })
	s.Schedule(5*time.Millisecond, func() { results <- "second" })
	select {
	case got := <-results:
		if got != "second" {
			t.Fatalf("expected replacement callback, got %q", got)
		}
	case <-time.After(time.Second):
		t.Fatalf("replacement callback never fired")
	}
	select {
	case got := <-results:
		t.Fatalf("replaced callback still fired: %q", got)
	case <-time.After(60 * time.Millisecond):
	}
}

func TestSystemClockIsMonotonicNonDecreasing(t *testing.T) {
	c := SystemClock()
	a := c.Now()
	b := c.Now()
	if b.Before(a) {
		t.Fatalf("clock went backwards: %v then %v", a, b)
	}
}
