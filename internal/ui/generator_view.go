package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pwgen/internal/generator"
)

const (
	defaultWidth   = 60
	defaultHeight  = 24
	reservedHeight = 14 // title, password box, controls, help and status lines
	minListHeight  = 3
)

// historyItem implements list.DefaultItem for one history entry.
type historyItem struct {
	index    int
	password string
}

func (h historyItem) FilterValue() string { return h.password }
func (h historyItem) Title() string       { return fmt.Sprintf("%2d. %s", h.index+1, h.password) }
func (h historyItem) Description() string { return "" }

// GeneratorView is the main screen: current password, controls and history.
type GeneratorView struct {
	Password  string
	Length    int
	MinLength int
	MaxLength int
	Mode      generator.Mode
	Focus     Focus
	Capacity  int

	status    string
	statusErr bool
	history   list.Model
	width     int
}

// Ensure GeneratorView implements View.
var _ View = (*GeneratorView)(nil)

// NewGeneratorView creates the screen. length is clamped to [MinLength, maxLength].
func NewGeneratorView(length, maxLength int, mode generator.Mode, capacity int) *GeneratorView {
	if maxLength < generator.MinLength {
		maxLength = generator.MinLength
	}
	l := list.New(nil, newHistoryDelegate(), defaultWidth, defaultHeight-reservedHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()

	v := &GeneratorView{
		MinLength: generator.MinLength,
		MaxLength: maxLength,
		Mode:      mode,
		Capacity:  capacity,
		history:   l,
		width:     defaultWidth,
	}
	v.SetLength(length)
	return v
}

// SetLength clamps n to the allowed range.
func (v *GeneratorView) SetLength(n int) {
	v.Length = max(v.MinLength, min(v.MaxLength, n))
}

// SetHistory replaces the history list, newest first.
func (v *GeneratorView) SetHistory(passwords []string) tea.Cmd {
	items := make([]list.Item, len(passwords))
	for i, p := range passwords {
		items[i] = historyItem{index: i, password: p}
	}
	cmd := v.history.SetItems(items)
	v.history.Select(0)
	if len(items) == 0 && v.Focus == FocusHistory {
		v.Focus = FocusControls
	}
	return cmd
}

// HistoryLen returns the number of entries shown.
func (v *GeneratorView) HistoryLen() int {
	return len(v.history.Items())
}

// SelectedHistory returns the highlighted history entry.
func (v *GeneratorView) SelectedHistory() (string, bool) {
	it, ok := v.history.SelectedItem().(historyItem)
	if !ok {
		return "", false
	}
	return it.password, true
}

// SetStatus shows msg in the status line; isErr selects the error style.
func (v *GeneratorView) SetStatus(msg string, isErr bool) {
	v.status = msg
	v.statusErr = isErr
}

// Status returns the current status line text.
func (v *GeneratorView) Status() string {
	return v.status
}

// Init implements View.
func (v *GeneratorView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (v *GeneratorView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.history.SetSize(msg.Width-4, max(minListHeight, msg.Height-reservedHeight))
		return v, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "shift+tab":
			if v.HistoryLen() > 0 {
				v.Focus = v.Focus.Toggle()
			}
			return v, nil
		case "left", "-":
			v.SetLength(v.Length - 1)
			return v, nil
		case "right", "+", "=":
			v.SetLength(v.Length + 1)
			return v, nil
		case "enter":
			if v.Focus == FocusHistory {
				if pw, ok := v.SelectedHistory(); ok {
					v.Password = pw
					v.SetStatus("Restored from history", false)
				}
				return v, nil
			}
			return v, func() tea.Msg { return GenerateMsg{} }
		}
		if v.Focus != FocusHistory {
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.history, cmd = v.history.Update(msg)
	return v, cmd
}

// View implements View.
func (v *GeneratorView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Password Generator") + "\n")

	pw := Styles.Placeholder.Render("press g to generate")
	if v.Password != "" {
		pw = Styles.Password.Render(v.Password)
	}
	box := Styles.Box
	if v.Focus == FocusControls {
		box = Styles.BoxFocused
	}
	desc, _ := generator.Describe(v.Mode)
	controls := lipgloss.JoinVertical(lipgloss.Left,
		pw,
		"",
		Styles.Label.Render("Mode")+Styles.Value.Render(v.Mode.String())+"  "+Styles.Muted.Render(desc),
		Styles.Label.Render("Length")+Styles.Value.Render(fmt.Sprintf("%-3d", v.Length))+" "+v.lengthBar(),
	)
	b.WriteString(box.Render(controls) + "\n")

	b.WriteString(Styles.Section.Render(fmt.Sprintf("History (%d/%d)", v.HistoryLen(), v.Capacity)) + "\n")
	histBox := Styles.Box
	if v.Focus == FocusHistory {
		histBox = Styles.BoxFocused
	}
	if v.HistoryLen() == 0 {
		b.WriteString(histBox.Render(Styles.Empty.Render("No passwords yet")) + "\n")
	} else {
		b.WriteString(histBox.Render(v.history.View()) + "\n")
	}

	if v.status != "" {
		style := Styles.Status
		if v.statusErr {
			style = Styles.Error
		}
		b.WriteString(style.Render(v.status) + "\n")
	}
	b.WriteString(MainHelp())
	return b.String()
}

// lengthBar renders the length as a slider between MinLength and MaxLength.
func (v *GeneratorView) lengthBar() string {
	const cells = 20
	span := v.MaxLength - v.MinLength
	filled := cells
	if span > 0 {
		filled = (v.Length - v.MinLength) * cells / span
	}
	bar := Styles.Key.Render(strings.Repeat("━", filled)) +
		Styles.Muted.Render(strings.Repeat("─", cells-filled))
	return bar + Styles.Muted.Render(fmt.Sprintf(" %d-%d", v.MinLength, v.MaxLength))
}
