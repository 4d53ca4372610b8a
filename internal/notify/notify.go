// Package notify implements the engine's terminal-world collaborators: a
// window-title status display, a bell pulse standing in for haptics, and a
// no-op keep-awake guard. The engine works identically when any of them is
// absent.
package notify

import (
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/charmbracelet/x/ansi"

	"rondo/internal/timer"
)

// TitleNotifier is the persistent status display: it rewrites the terminal
// window title with the current interval and remaining time via an OSC
// escape. Cheap enough for a 1s refresh, visible while the app is in a
// background tab or pane.
type TitleNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTitleNotifier writes titles to w, normally the terminal's stdout.
func NewTitleNotifier(w io.Writer) *TitleNotifier {
	return &TitleNotifier{w: w}
}

// Present implements timer.StatusPresenter.
func (n *TitleNotifier) Present(s timer.StatusUpdate) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, err := io.WriteString(n.w, ansi.SetWindowTitle(Title(s)))
	return err
}

// Title renders the window-title text for a status update.
func Title(s timer.StatusUpdate) string {
	state := "paused"
	if s.Running {
		state = "running"
	}
	if s.Interval == "" {
		return fmt.Sprintf("rondo — %s", state)
	}
	return fmt.Sprintf("rondo — %s %s (%s)", s.Interval, timer.FormatRemaining(s.Remaining), state)
}

// BellPulse is the haptic stand-in: one BEL per interval completion. Most
// terminals render it as an audible or visual bell.
type BellPulse struct {
	mu sync.Mutex
	w  io.Writer
}

func NewBellPulse(w io.Writer) *BellPulse {
	return &BellPulse{w: w}
}

// Pulse implements timer.Pulse.
func (b *BellPulse) Pulse() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = io.WriteString(b.w, "\a")
}

// NopGuard satisfies timer.KeepAwake without doing anything: a terminal
// process stays scheduled as long as it runs. It logs transitions so a
// platform-specific guard can be dropped in later without changing the
// engine.
type NopGuard struct{}

func (NopGuard) Acquire() error {
	log.Printf("keep-awake: acquired")
	return nil
}

func (NopGuard) Release() {
	log.Printf("keep-awake: released")
}
