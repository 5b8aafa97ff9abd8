package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var errDigitsOnly = errors.New("digits only")

// LengthModal lets the user type a password length.
// Input that is not a number reverts to the current length.
type LengthModal struct {
	input    textinput.Model
	lo, hi int
}

// Ensure LengthModal implements View.
var _ View = (*LengthModal)(nil)

// NewLengthModal creates the modal pre-filled with current.
func NewLengthModal(current, lo, hi int) *LengthModal {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(current)
	ti.SetValue(strconv.Itoa(current))
	ti.CharLimit = 4
	ti.Width = 8
	ti.Validate = func(s string) error {
		for _, r := range s {
			if r < '0' || r > '9' {
				return errDigitsOnly
			}
		}
		return nil
	}
	ti.Focus()
	return &LengthModal{input: ti, lo: lo, hi: hi}
}

// Init implements View.
func (m *LengthModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *LengthModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "esc":
			return m, dismiss
		case "enter":
			n, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil {
				return m, dismiss
			}
			return m, func() tea.Msg { return SetLengthMsg{Length: n} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Value returns the raw input.
func (m *LengthModal) Value() string {
	return m.input.Value()
}

// View implements View.
func (m *LengthModal) View() string {
	content := Styles.Title.Render("Password length") + "\n\n"
	content += m.input.View() + "\n"
	content += Styles.Hint.Render(fmt.Sprintf("between %d and %d", m.lo, m.hi)) + "\n\n"
	content += Styles.Hint.Render("Enter: apply  Esc: cancel")
	return Styles.Box.Padding(1, 2).Margin(1).Render(content)
}
