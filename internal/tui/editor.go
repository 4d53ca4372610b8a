package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"rondo/internal/config"
	"rondo/internal/database"
	"rondo/internal/models"
	"rondo/internal/timer"
)

type editorSavedMsg struct{ id int64 }

type editorCanceledMsg struct{}

type inputTarget int

const (
	inputNone inputTarget = iota
	inputName
	inputInterval
)

// EditorModel edits one sequence: its name, its circular flag, and the
// ordered interval list with add, delete and reorder.
type EditorModel struct {
	ctx   context.Context
	store database.Repository

	seq    models.Sequence
	cursor int
	input  textinput.Model
	target inputTarget
	err    error
}

// NewEditorModel edits a copy of seq, or a fresh sequence when seq is nil.
func NewEditorModel(ctx context.Context, store database.Repository, seq *models.Sequence) EditorModel {
	ti := textinput.New()
	ti.Placeholder = "Work 1:30"
	ti.CharLimit = config.MaxIntervalName + 8
	ti.Width = 40

	m := EditorModel{ctx: ctx, store: store, input: ti}
	if seq != nil {
		m.seq = seq.Clone()
	}
	return m
}

func (m EditorModel) focusCmd() tea.Cmd {
	return textinput.Blink
}

func (m EditorModel) Update(msg tea.Msg) (EditorModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if m.target != inputNone {
		return m.handleInputKey(key)
	}
	return m.handleListKey(key)
}

func (m EditorModel) handleInputKey(key tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch key.Type {
	case tea.KeyEscape:
		m.target = inputNone
		m.input.Blur()
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		value := strings.TrimSpace(m.input.Value())
		switch m.target {
		case inputName:
			if len(value) > config.MaxSequenceName {
				value = value[:config.MaxSequenceName]
			}
			m.seq.Name = value
		case inputInterval:
			iv, err := ParseIntervalSpec(value)
			if err != nil {
				m.err = err
				return m, nil
			}
			if len(m.seq.Intervals) >= config.MaxIntervalCount {
				m.err = fmt.Errorf("at most %d intervals", config.MaxIntervalCount)
				return m, nil
			}
			m.seq.Intervals = append(m.seq.Intervals, iv)
			m.cursor = len(m.seq.Intervals) - 1
		}
		m.err = nil
		m.target = inputNone
		m.input.Blur()
		m.input.Reset()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m EditorModel) handleListKey(key tea.KeyMsg) (EditorModel, tea.Cmd) {
	switch key.String() {
	case "esc":
		return m, func() tea.Msg { return editorCanceledMsg{} }
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.seq.Intervals)-1 {
			m.cursor++
		}
	case "a":
		m.target = inputInterval
		m.input.Placeholder = "Work 1:30"
		m.input.Reset()
		m.input.Focus()
		return m, textinput.Blink
	case "r":
		m.target = inputName
		m.input.Placeholder = "Sequence name"
		m.input.Reset()
		m.input.SetValue(m.seq.Name)
		m.input.Focus()
		return m, textinput.Blink
	case "D":
		if m.cursor >= 0 && m.cursor < len(m.seq.Intervals) {
			m.seq.Intervals = append(m.seq.Intervals[:m.cursor], m.seq.Intervals[m.cursor+1:]...)
			if m.cursor >= len(m.seq.Intervals) && m.cursor > 0 {
				m.cursor--
			}
		}
	case "K":
		if m.cursor > 0 {
			ivs := m.seq.Intervals
			ivs[m.cursor-1], ivs[m.cursor] = ivs[m.cursor], ivs[m.cursor-1]
			m.cursor--
		}
	case "J":
		if m.cursor >= 0 && m.cursor < len(m.seq.Intervals)-1 {
			ivs := m.seq.Intervals
			ivs[m.cursor+1], ivs[m.cursor] = ivs[m.cursor], ivs[m.cursor+1]
			m.cursor++
		}
	case "c":
		m.seq.Circular = !m.seq.Circular
	case "s":
		return m.save()
	}
	return m, nil
}

func (m EditorModel) save() (EditorModel, tea.Cmd) {
	if err := m.seq.Validate(); err != nil {
		m.err = err
		return m, nil
	}
	id, err := m.store.SaveSequence(m.ctx, m.seq)
	if err != nil {
		m.err = err
		return m, nil
	}
	return m, func() tea.Msg { return editorSavedMsg{id: id} }
}

func (m EditorModel) View() string {
	theme := CurrentTheme
	var b strings.Builder

	title := m.seq.Name
	if title == "" {
		title = "(unnamed sequence)"
	}
	b.WriteString(theme.Header.Render("edit: " + title))
	if m.seq.Circular {
		b.WriteString(theme.Circular.Render("  ⟳ circular"))
	}
	b.WriteString("\n\n")

	if len(m.seq.Intervals) == 0 {
		b.WriteString(theme.Dim.Render("No intervals. Press 'a' to add one."))
		b.WriteString("\n")
	}
	for i, iv := range m.seq.Intervals {
		line := fmt.Sprintf("%2d. %s  %s", i+1, iv.Name, timer.FormatRemaining(iv.Duration))
		if i == m.cursor && m.target == inputNone {
			b.WriteString("> " + theme.Selected.Render(line) + "\n")
		} else {
			b.WriteString("  " + theme.Interval.Render(line) + "\n")
		}
	}
	b.WriteString("\n")

	if m.target != inputNone {
		b.WriteString(theme.Input.Render(m.input.View()) + "\n")
	}
	if m.err != nil {
		b.WriteString(theme.Error.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString(theme.Dim.Render("[a] add  [D] delete  [K/J] move  [r] rename  [c] circular  [s] save  [esc] back"))
	return theme.Base.Render(b.String())
}
