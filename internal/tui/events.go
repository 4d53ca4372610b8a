package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// EventKind discriminates forwarded engine events.
type EventKind int

const (
	EventTick EventKind = iota
	EventIntervalComplete
	EventSequenceComplete
	EventLapChanged
	EventIntervalChanged
	EventPaused
	EventResumed
	EventStopped
)

// EngineEvent is the channel payload bridging the engine's observer
// callbacks into bubbletea messages.
type EngineEvent struct {
	Kind      EventKind
	Remaining time.Duration
	Index     int
	Laps      int
}

// EngineEventMsg wraps an EngineEvent as a tea.Msg.
type EngineEventMsg EngineEvent

// channelObserver implements timer.Observer by pushing events onto a
// buffered channel. Sends never block the engine: if the UI falls behind,
// events are dropped and the next Snapshot read repairs the display.
type channelObserver struct {
	ch chan EngineEvent
}

func newChannelObserver() *channelObserver {
	return &channelObserver{ch: make(chan EngineEvent, 128)}
}

func (o *channelObserver) send(e EngineEvent) {
	select {
	case o.ch <- e:
	default:
	}
}

func (o *channelObserver) Tick(remaining time.Duration) {
	o.send(EngineEvent{Kind: EventTick, Remaining: remaining})
}

func (o *channelObserver) IntervalComplete(index int) {
	o.send(EngineEvent{Kind: EventIntervalComplete, Index: index})
}

func (o *channelObserver) SequenceComplete() {
	o.send(EngineEvent{Kind: EventSequenceComplete})
}

func (o *channelObserver) LapChanged(count int) {
	o.send(EngineEvent{Kind: EventLapChanged, Laps: count})
}

func (o *channelObserver) IntervalChanged(index int) {
	o.send(EngineEvent{Kind: EventIntervalChanged, Index: index})
}

func (o *channelObserver) Paused()  { o.send(EngineEvent{Kind: EventPaused}) }
func (o *channelObserver) Resumed() { o.send(EngineEvent{Kind: EventResumed}) }
func (o *channelObserver) Stopped() { o.send(EngineEvent{Kind: EventStopped}) }

// waitForEvent blocks until the next engine event arrives. The Update loop
// re-issues it after consuming each message (bubbletea subscription
// pattern).
func waitForEvent(ch <-chan EngineEvent) tea.Cmd {
	return func() tea.Msg {
		return EngineEventMsg(<-ch)
	}
}
