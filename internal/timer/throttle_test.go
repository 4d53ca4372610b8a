package timer

import (
	"sync"
	"testing"
	"time"

	"rondo/internal/models"
)

func TestShouldNotify(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		now  time.Time
		last time.Time
		want bool
	}{
		{"zero last always notifies", base, time.Time{}, true},
		{"just under the window", base.Add(999 * time.Millisecond), base, false},
		{"exactly the window", base.Add(time.Second), base, true},
		{"well past the window", base.Add(time.Minute), base, true},
		{"same instant", base, base, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldNotify(tt.now, tt.last, time.Second); got != tt.want {
				t.Fatalf("ShouldNotify(%v, %v) = %v, want %v", tt.now, tt.last, got, tt.want)
			}
		})
	}
}

// countingPresenter records every Present call.
type countingPresenter struct {
	mu      sync.Mutex
	updates []StatusUpdate
}

func (p *countingPresenter) Present(s StatusUpdate) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.updates = append(p.updates, s)
	return nil
}

func (p *countingPresenter) count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.updates)
}

func (p *countingPresenter) last() StatusUpdate {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.updates[len(p.updates)-1]
}

func TestPeriodicRefreshIsThrottled(t *testing.T) {
	clock := newFakeClock()
	sched := &manualScheduler{}
	presenter := &countingPresenter{}
	e := New(Config{Clock: clock, Scheduler: sched, Presenter: presenter})
	e.SetSequence(models.Sequence{Name: "solo", Intervals: []models.Interval{{Duration: 30 * time.Second, Name: "only"}}})

	e.Start() // forced refresh
	if presenter.count() != 1 {
		t.Fatalf("expected one forced refresh on Start, got %d", presenter.count())
	}

	// Nine 100ms ticks stay inside the 1s window; the tenth crosses it.
	for i := 0; i < 9; i++ {
		clock.Advance(100 * time.Millisecond)
		sched.fire()
	}
	if presenter.count() != 1 {
		t.Fatalf("throttle leaked: %d refreshes inside the window", presenter.count())
	}
	clock.Advance(100 * time.Millisecond)
	sched.fire()
	if presenter.count() != 2 {
		t.Fatalf("expected a refresh once the window elapsed, got %d", presenter.count())
	}
}

func TestTransitionsForceRefresh(t *testing.T) {
	clock := newFakeClock()
	sched := &manualScheduler{}
	presenter := &countingPresenter{}
	e := New(Config{Clock: clock, Scheduler: sched, Presenter: presenter})
	e.SetSequence(models.Sequence{Name: "solo", Intervals: []models.Interval{{Duration: 30 * time.Second, Name: "only"}}})

	e.Start()
	e.Pause() // within the throttle window, must refresh anyway
	if presenter.count() != 2 {
		t.Fatalf("expected forced refresh on Pause, got %d", presenter.count())
	}
	if presenter.last().Running {
		t.Fatalf("paused refresh must report not running")
	}
	e.Resume()
	if presenter.count() != 3 {
		t.Fatalf("expected forced refresh on Resume, got %d", presenter.count())
	}
	if !presenter.last().Running {
		t.Fatalf("resumed refresh must report running")
	}
	e.Stop()
	if presenter.count() != 4 {
		t.Fatalf("expected forced refresh on Stop, got %d", presenter.count())
	}
}
