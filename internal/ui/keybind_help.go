package ui

import (
	"sort"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// RenderKeybindHelp draws the transient hint bar shown after SPC.
func RenderKeybindHelp(h *KeyHandler) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.CurrentSeq()
	hints := h.Registry.LeaderHints(seq)
	if len(hints) == 0 {
		return ""
	}

	keys := make([]string, 0, len(hints))
	for k := range hints {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bindings := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		bindings = append(bindings, key.NewBinding(key.WithKeys(k), key.WithHelp(k, hints[k])))
	}
	bindings = append(bindings, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))

	hm := help.New()
	hm.Styles.ShortKey = Styles.Key
	hm.Styles.ShortDesc = Styles.Hint
	hm.Styles.ShortSeparator = Styles.Hint

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1).
		MarginTop(1)
	return box.Render(Styles.Hint.Render(seq) + " " + hm.ShortHelpView(bindings))
}

// MainHelp is the always-visible key summary under the generator screen.
func MainHelp() string {
	bindings := []key.Binding{
		key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "generate")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy")),
		key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "length")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit length")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "history")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "more")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
	hm := help.New()
	hm.Styles.ShortKey = Styles.Key
	hm.Styles.ShortDesc = Styles.Hint
	hm.Styles.ShortSeparator = Styles.Hint
	return hm.ShortHelpView(bindings)
}
