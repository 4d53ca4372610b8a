package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"rondo/internal/config"
	"rondo/internal/database"
	"rondo/internal/models"
	"rondo/internal/timer"
	"rondo/internal/util"
)

// TimerModel is the running-timer screen. The engine drives it through
// forwarded observer events; key handling only issues engine commands and
// session bookkeeping.
type TimerModel struct {
	ctx    context.Context
	store  database.Repository
	engine *timer.Engine

	seq           models.Sequence
	sessionID     int64
	snap          timer.Snapshot
	intervalsDone int
	finished      bool
	progress      progress.Model
	width         int
}

func NewTimerModel(ctx context.Context, store database.Repository, engine *timer.Engine, seq models.Sequence) TimerModel {
	p := progress.New(progress.WithDefaultGradient())
	p.Width = 40
	return TimerModel{
		ctx:      ctx,
		store:    store,
		engine:   engine,
		seq:      seq,
		progress: p,
	}
}

// begin configures and starts the engine and opens a session record.
// Returns false when the sequence is empty and nothing started.
func (m *TimerModel) begin() bool {
	m.engine.SetSequence(m.seq)
	m.engine.Start()
	if m.engine.Status() != timer.StatusRunning {
		return false
	}
	id, err := m.store.StartSession(m.ctx, m.seq.ID, m.seq.Name, time.Now())
	if err != nil {
		util.LogError("start session", err)
	} else {
		m.sessionID = id
	}
	m.snap = m.engine.Snapshot()
	m.intervalsDone = 0
	m.finished = false
	return true
}

// handleEngineEvent refreshes the display snapshot and keeps the session
// record in step with the engine.
func (m TimerModel) handleEngineEvent(ev EngineEvent) TimerModel {
	m.snap = m.engine.Snapshot()
	switch ev.Kind {
	case EventIntervalComplete:
		m.intervalsDone++
	case EventSequenceComplete:
		m.closeSession(config.OutcomeCompleted)
		m.finished = true
	}
	return m
}

func (m TimerModel) handleWindowSize(msg tea.WindowSizeMsg) TimerModel {
	m.width = msg.Width
	target := msg.Width - 20
	if target < 20 {
		target = 20
	}
	if target > 60 {
		target = 60
	}
	m.progress.Width = target
	return m
}

func (m TimerModel) Update(msg tea.Msg) (TimerModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch key.String() {
	case " ", "space":
		switch m.engine.Status() {
		case timer.StatusRunning:
			m.engine.Pause()
		case timer.StatusPaused:
			m.engine.Resume()
		}
		m.snap = m.engine.Snapshot()
	case "s":
		status := m.engine.Status()
		if status == timer.StatusRunning || status == timer.StatusPaused {
			m.engine.Stop()
			m.closeSession(config.OutcomeStopped)
		}
		m.snap = m.engine.Snapshot()
	case "r":
		m.engine.Reset()
		m.closeSession(config.OutcomeStopped)
		m.snap = m.engine.Snapshot()
	case "enter":
		// Re-run after completion or stop.
		status := m.engine.Status()
		if status == timer.StatusIdle || status == timer.StatusCompleted {
			m.begin()
		}
	}
	return m, nil
}

// finishAborted closes the session as stopped; used when the user leaves
// the screen or quits mid-run.
func (m *TimerModel) finishAborted() {
	m.closeSession(config.OutcomeStopped)
}

// closeSession records the final counters exactly once per run.
func (m *TimerModel) closeSession(outcome string) {
	if m.sessionID == 0 || m.finished {
		return
	}
	err := m.store.FinishSession(m.ctx, m.sessionID, time.Now(),
		m.engine.Laps(), m.intervalsDone, outcome)
	util.LogError("finish session", err)
	m.sessionID = 0
}

func (m TimerModel) View() string {
	theme := CurrentTheme
	snap := m.snap
	var b strings.Builder

	header := ansi.Truncate(m.seq.Name, 40, "…")
	if snap.Circular {
		header += theme.Circular.Render(fmt.Sprintf("  ⟳ lap %d", snap.Laps))
	}
	b.WriteString(theme.Header.Render(header) + "\n\n")

	switch snap.Status {
	case timer.StatusCompleted:
		b.WriteString(theme.Completed.Render("Sequence complete!") + "\n")
		b.WriteString(theme.Dim.Render(fmt.Sprintf("%d intervals done", m.intervalsDone)) + "\n")
	case timer.StatusIdle:
		b.WriteString(theme.Dim.Render("Stopped.") + "\n")
	default:
		name := "interval"
		if snap.IntervalName != "" {
			name = snap.IntervalName
		}
		position := fmt.Sprintf("%s  (%d/%d)", ansi.Truncate(name, 30, "…"), snap.Index+1, snap.IntervalCount)
		b.WriteString(theme.Interval.Render(position) + "\n\n")
		b.WriteString(theme.Clock.Render(timer.FormatRemaining(snap.Remaining)) + "\n\n")
		b.WriteString(m.progress.ViewAs(intervalProgress(snap)) + "\n")
		if snap.Status == timer.StatusPaused {
			b.WriteString("\n" + theme.Circular.Render("PAUSED") + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Dim.Render("[space] pause/resume  [s] stop  [r] reset  [enter] restart  [esc] back"))
	return theme.Base.Render(b.String())
}

// intervalProgress maps the snapshot onto a 0..1 completion ratio for the
// current interval.
func intervalProgress(snap timer.Snapshot) float64 {
	if snap.IntervalDuration <= 0 {
		return 1
	}
	done := float64(snap.IntervalDuration-snap.Remaining) / float64(snap.IntervalDuration)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}
