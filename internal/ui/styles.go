package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Palette: pink on charcoal.
const (
	ColorAccent   = "#fc6c85"
	ColorStrong   = "#e52b50"
	ColorSoft     = "#ffb6c1"
	ColorPale     = "#ffc0cb"
	ColorText     = "#f5f5f5"
	ColorMuted    = "241"
	ColorInk      = "#303030"
	ColorDanger   = "196"
	ColorWarning  = "208"
	ColorSelected = "#ffffff"
)

// Styles are shared by the generator view and modals.
var Styles = struct {
	Title        lipgloss.Style
	TitleWarning lipgloss.Style
	Box          lipgloss.Style
	BoxFocused   lipgloss.Style
	BoxDanger    lipgloss.Style
	Password     lipgloss.Style
	Placeholder  lipgloss.Style
	Label        lipgloss.Style
	Value        lipgloss.Style
	Selected     lipgloss.Style
	Muted        lipgloss.Style
	Hint         lipgloss.Style
	Key          lipgloss.Style
	Section      lipgloss.Style
	Empty        lipgloss.Style
	Status       lipgloss.Style
	Error        lipgloss.Style
	Details      lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	TitleWarning: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorDanger)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSoft)).
		Padding(0, 1),
	BoxFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorStrong)).
		Padding(0, 1),
	BoxDanger: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Padding(1, 2).
		Margin(1),
	Password: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInk)).
		Background(lipgloss.Color(ColorPale)).
		Padding(0, 1),
	Placeholder: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSoft)).
		Width(8),
	Value: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Bold(true),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSelected)).
		Background(lipgloss.Color(ColorAccent)).
		Bold(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Status: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorStrong)).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Details: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)),
}

// newHistoryDelegate returns a compact single-line list delegate.
func newHistoryDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = false
	d.Styles.SelectedTitle = Styles.Selected.Padding(0, 1)
	d.Styles.NormalTitle = Styles.Value.Bold(false).Padding(0, 1)
	d.Styles.DimmedTitle = Styles.Muted.Padding(0, 1)
	return d
}
