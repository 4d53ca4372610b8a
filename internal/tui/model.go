package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"rondo/internal/database"
	"rondo/internal/timer"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StatePicker SessionState = iota
	StateEditor
	StateTimer
)

// MainModel is the root bubbletea model that switches between the sequence
// picker, the sequence editor and the running-timer screen. It owns the
// engine-event subscription; sub-models never touch the channel.
type MainModel struct {
	ctx    context.Context
	store  database.Repository
	engine *timer.Engine
	events *channelObserver

	state  SessionState
	picker PickerModel
	editor EditorModel
	run    TimerModel

	width, height int
}

// NewMainModel wires the engine's observer to the TUI and starts in the
// picker.
func NewMainModel(ctx context.Context, store database.Repository, engine *timer.Engine) MainModel {
	events := newChannelObserver()
	engine.SetObserver(events)
	return MainModel{
		ctx:    ctx,
		store:  store,
		engine: engine,
		events: events,
		state:  StatePicker,
		picker: NewPickerModel(ctx, store),
	}
}

func (m MainModel) Init() tea.Cmd {
	return tea.Batch(m.picker.loadCmd(), waitForEvent(m.events.ch))
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.run = m.run.handleWindowSize(msg)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.abortRun()
			return m, tea.Quit
		}

	case EngineEventMsg:
		if m.state == StateTimer {
			m.run = m.run.handleEngineEvent(EngineEvent(msg))
		}
		// Always re-arm the subscription, whatever screen is showing.
		return m, waitForEvent(m.events.ch)
	}

	switch m.state {
	case StatePicker:
		return m.updatePicker(msg)
	case StateEditor:
		return m.updateEditor(msg)
	case StateTimer:
		return m.updateTimer(msg)
	}
	return m, nil
}

func (m MainModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			if seq, ok := m.picker.selected(); ok {
				m.run = NewTimerModel(m.ctx, m.store, m.engine, seq)
				started := m.run.begin()
				if started {
					m.state = StateTimer
					return m, nil
				}
				m.picker.message = "sequence has no intervals"
			}
			return m, nil
		case "n":
			m.editor = NewEditorModel(m.ctx, m.store, nil)
			m.state = StateEditor
			return m, m.editor.focusCmd()
		case "e":
			if seq, ok := m.picker.selected(); ok {
				m.editor = NewEditorModel(m.ctx, m.store, &seq)
				m.state = StateEditor
				return m, m.editor.focusCmd()
			}
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m MainModel) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case editorSavedMsg, editorCanceledMsg:
		m.state = StatePicker
		return m, m.picker.loadCmd()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m MainModel) updateTimer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.abortRun()
		m.state = StatePicker
		return m, m.picker.loadCmd()
	}
	var cmd tea.Cmd
	m.run, cmd = m.run.Update(msg)
	return m, cmd
}

// abortRun stops an active engine run and closes its session record.
func (m *MainModel) abortRun() {
	if m.state != StateTimer {
		return
	}
	status := m.engine.Status()
	if status == timer.StatusRunning || status == timer.StatusPaused {
		m.engine.Stop()
	}
	m.run.finishAborted()
}

func (m MainModel) View() string {
	switch m.state {
	case StatePicker:
		return m.picker.View()
	case StateEditor:
		return m.editor.View()
	case StateTimer:
		return m.run.View()
	}
	return ""
}
