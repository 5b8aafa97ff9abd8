package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModal asks a yes/no question. y confirms; n and Esc cancel.
// Enter picks the default answer, which is No unless DefaultYes is set.
type ConfirmModal struct {
	Title      string
	Label      string
	Details    string
	DefaultYes bool
	OnConfirm  func() tea.Msg
	boxStyle   lipgloss.Style
}

// Ensure ConfirmModal implements View.
var _ View = (*ConfirmModal)(nil)

// NewConfirmModal creates a confirmation modal that defaults to No.
func NewConfirmModal(title, label string, onConfirm func() tea.Msg) *ConfirmModal {
	return &ConfirmModal{
		Title:     title,
		Label:     label,
		OnConfirm: onConfirm,
		boxStyle:  Styles.BoxDanger,
	}
}

// WithDetails adds a warning line under the label.
func (m *ConfirmModal) WithDetails(details string) *ConfirmModal {
	m.Details = details
	return m
}

// NewClearHistoryConfirmModal asks before dropping n history entries.
func NewClearHistoryConfirmModal(n int) *ConfirmModal {
	return NewConfirmModal(
		"Clear history?",
		"Are you sure you want to clear the password history?",
		func() tea.Msg { return ClearHistoryMsg{} },
	).WithDetails(fmt.Sprintf("%d password(s) will be removed", n))
}

// Init implements View.
func (m *ConfirmModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *ConfirmModal) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch km.String() {
	case "y", "Y":
		return m, m.confirm()
	case "n", "N", "esc":
		return m, dismiss
	case "enter":
		if m.DefaultYes {
			return m, m.confirm()
		}
		return m, dismiss
	}
	return m, nil
}

func (m *ConfirmModal) confirm() tea.Cmd {
	if m.OnConfirm == nil {
		return dismiss
	}
	return m.OnConfirm
}

func dismiss() tea.Msg { return DismissModalMsg{} }

// View implements View.
func (m *ConfirmModal) View() string {
	content := Styles.TitleWarning.Render(m.Title) + "\n\n" + m.Label
	if m.Details != "" {
		content += "\n" + Styles.Details.Render(m.Details)
	}
	choice := "y: yes  N/Enter: no  Esc: cancel"
	if m.DefaultYes {
		choice = "Y/Enter: yes  n: no  Esc: cancel"
	}
	content += "\n\n" + Styles.Hint.Render(choice)
	return m.boxStyle.Render(content)
}
