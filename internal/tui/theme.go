package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name      string
	Base      lipgloss.Style
	Header    lipgloss.Style
	Clock     lipgloss.Style
	Interval  lipgloss.Style
	Circular  lipgloss.Style
	Selected  lipgloss.Style
	Dim       lipgloss.Style
	Error     lipgloss.Style
	Input     lipgloss.Style
	Completed lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:      "Default",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Clock:     lipgloss.NewStyle().Foreground(lipgloss.Color("81")).Bold(true),
		Interval:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Circular:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1),
		Completed: lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
	},
	"mono": {
		Name:      "Mono",
		Base:      lipgloss.NewStyle().Margin(1, 2),
		Header:    lipgloss.NewStyle().Bold(true),
		Clock:     lipgloss.NewStyle().Bold(true),
		Interval:  lipgloss.NewStyle(),
		Circular:  lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Reverse(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Error:     lipgloss.NewStyle().Bold(true),
		Input:     lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1),
		Completed: lipgloss.NewStyle().Bold(true),
	},
}

// CurrentTheme holds the active theme. Initialized to default so renderers
// never dereference a missing entry.
var CurrentTheme = Themes["default"]

func SetTheme(name string) {
	if t, ok := Themes[name]; ok {
		CurrentTheme = t
	}
}
