package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"rondo/internal/database"
	"rondo/internal/models"
	"rondo/internal/timer"
)

type sequencesLoadedMsg []models.Sequence

type pickerErrMsg struct{ err error }

type reportSavedMsg string

// PickerModel lists the stored sequences and carries the picker-local
// actions: delete, duplicate, report export. Starting, creating and editing
// are routed by MainModel.
type PickerModel struct {
	ctx   context.Context
	store database.Repository

	sequences []models.Sequence
	cursor    int
	message   string
	err       error
}

func NewPickerModel(ctx context.Context, store database.Repository) PickerModel {
	return PickerModel{ctx: ctx, store: store}
}

func (m PickerModel) loadCmd() tea.Cmd {
	return func() tea.Msg {
		seqs, err := m.store.ListSequences(m.ctx)
		if err != nil {
			return pickerErrMsg{err}
		}
		return sequencesLoadedMsg(seqs)
	}
}

// selected returns the sequence under the cursor.
func (m PickerModel) selected() (models.Sequence, bool) {
	if m.cursor < 0 || m.cursor >= len(m.sequences) {
		return models.Sequence{}, false
	}
	return m.sequences[m.cursor].Clone(), true
}

func (m PickerModel) Update(msg tea.Msg) (PickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case sequencesLoadedMsg:
		m.sequences = msg
		if m.cursor >= len(m.sequences) {
			m.cursor = len(m.sequences) - 1
		}
		if m.cursor < 0 {
			m.cursor = 0
		}
		m.err = nil
		return m, nil

	case pickerErrMsg:
		m.err = msg.err
		return m, nil

	case reportSavedMsg:
		m.message = "report saved to " + string(msg)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m PickerModel) handleKey(msg tea.KeyMsg) (PickerModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.sequences)-1 {
			m.cursor++
		}
	case "x":
		if seq, ok := m.selected(); ok {
			return m, m.deleteCmd(seq.ID)
		}
	case "d":
		if seq, ok := m.selected(); ok {
			return m, m.duplicateCmd(seq)
		}
	case "p":
		return m, m.reportCmd()
	}
	return m, nil
}

func (m PickerModel) deleteCmd(id int64) tea.Cmd {
	return func() tea.Msg {
		if err := m.store.DeleteSequence(m.ctx, id); err != nil {
			return pickerErrMsg{err}
		}
		seqs, err := m.store.ListSequences(m.ctx)
		if err != nil {
			return pickerErrMsg{err}
		}
		return sequencesLoadedMsg(seqs)
	}
}

func (m PickerModel) duplicateCmd(seq models.Sequence) tea.Cmd {
	return func() tea.Msg {
		if _, err := m.store.DuplicateSequence(m.ctx, seq.ID, seq.Name+" (copy)"); err != nil {
			return pickerErrMsg{err}
		}
		seqs, err := m.store.ListSequences(m.ctx)
		if err != nil {
			return pickerErrMsg{err}
		}
		return sequencesLoadedMsg(seqs)
	}
}

func (m PickerModel) reportCmd() tea.Cmd {
	return func() tea.Msg {
		sessions, err := m.store.ListSessions(m.ctx, 100)
		if err != nil {
			return pickerErrMsg{err}
		}
		path, err := WriteSessionReport(sessions)
		if err != nil {
			return pickerErrMsg{err}
		}
		return reportSavedMsg(path)
	}
}

func (m PickerModel) View() string {
	theme := CurrentTheme
	var b strings.Builder
	b.WriteString(theme.Header.Render("rondo — interval sequences"))
	b.WriteString("\n\n")

	if len(m.sequences) == 0 {
		b.WriteString(theme.Dim.Render("No sequences yet. Press 'n' to create one."))
		b.WriteString("\n")
	}
	for i, seq := range m.sequences {
		marker := "  "
		line := describeSequence(seq)
		if i == m.cursor {
			marker = "> "
			line = theme.Selected.Render(line)
		} else {
			line = theme.Interval.Render(line)
		}
		b.WriteString(marker + line + "\n")
	}

	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(theme.Error.Render("error: "+m.err.Error()) + "\n")
	} else if m.message != "" {
		b.WriteString(theme.Dim.Render(m.message) + "\n")
	}
	b.WriteString(theme.Dim.Render("[enter] run  [n] new  [e] edit  [d] duplicate  [x] delete  [p] report  [q] quit"))
	return theme.Base.Render(b.String())
}

func describeSequence(seq models.Sequence) string {
	name := ansi.Truncate(seq.Name, 40, "…")
	desc := fmt.Sprintf("%s  %d intervals, %s", name, len(seq.Intervals), timer.FormatRemaining(seq.Total()))
	if seq.Circular {
		desc += "  ⟳"
	}
	return desc
}
