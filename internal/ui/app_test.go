package ui

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"pwgen/internal/generator"
)

type fakeClipboard struct {
	written []string
	err     error
}

func (f *fakeClipboard) WriteAll(text string) error {
	if f.err != nil {
		return f.err
	}
	f.written = append(f.written, text)
	return nil
}

func newTestApp(t *testing.T, capacity int) (*AppModel, tea.Model, *fakeClipboard) {
	t.Helper()
	gen := generator.New(
		generator.WithSource(rand.New(rand.NewPCG(7, 11))),
		generator.WithCapacity(capacity),
	)
	clip := &fakeClipboard{}
	m := NewAppModel(Deps{
		Generator: gen,
		Clipboard: clip,
		Length:    12,
		MaxLength: 32,
		Mode:      generator.Full,
	})
	m.StatusTTL = 0
	return m, m.AsTeaModel(), clip
}

// isAppMsg reports whether msg is one of the messages AppModel handles
// itself; other messages (cursor blinks, ticks) are not fed back in tests.
func isAppMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case GenerateMsg, CopyMsg, CycleModeMsg, ShowEditLengthMsg, SetLengthMsg,
		ShowClearHistoryMsg, ClearHistoryMsg, DismissModalMsg, clearStatusMsg:
		return true
	}
	return false
}

// send delivers msg and follows the resulting app messages until the model
// settles. It reports whether a tea.QuitMsg was produced.
func send(a tea.Model, msg tea.Msg) (quit bool) {
	for msg != nil {
		_, cmd := a.Update(msg)
		if cmd == nil {
			return false
		}
		next := cmd()
		switch next := next.(type) {
		case tea.QuitMsg:
			return true
		case tea.BatchMsg:
			for _, c := range next {
				if c == nil {
					continue
				}
				if m := c(); isAppMsg(m) && send(a, m) {
					return true
				}
			}
			return false
		}
		if !isAppMsg(next) {
			return false
		}
		msg = next
	}
	return false
}

// typeKeys delivers keys without running the returned commands, which for a
// focused textinput include a cursor blink timer.
func typeKeys(a tea.Model, keys ...string) {
	for _, k := range keys {
		_, _ = a.Update(keyMsg(k))
	}
}

func press(a tea.Model, keys ...string) (quit bool) {
	for _, k := range keys {
		if send(a, keyMsg(k)) {
			quit = true
		}
	}
	return quit
}

func TestApp_GenerateKey(t *testing.T) {
	m, a, _ := newTestApp(t, 10)

	press(a, "g")
	if len(m.Screen.Password) != 12 {
		t.Fatalf("password %q: expected length 12", m.Screen.Password)
	}
	hist := m.Generator.History()
	if len(hist) != 1 || hist[0] != m.Screen.Password {
		t.Errorf("history = %v, want [%s]", hist, m.Screen.Password)
	}
	if m.Screen.HistoryLen() != 1 {
		t.Errorf("history list shows %d entries, want 1", m.Screen.HistoryLen())
	}
}

func TestApp_EnterGeneratesOnControls(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	press(a, "enter")
	if m.Screen.Password == "" {
		t.Error("enter on controls should generate")
	}
}

func TestApp_HistoryNewestFirstAndBounded(t *testing.T) {
	m, a, _ := newTestApp(t, 3)
	var made []string
	for range 4 {
		press(a, "g")
		made = append(made, m.Screen.Password)
	}
	hist := m.Generator.History()
	want := []string{made[3], made[2], made[1]}
	if len(hist) != 3 {
		t.Fatalf("history length %d, want 3", len(hist))
	}
	for i := range want {
		if hist[i] != want[i] {
			t.Errorf("history[%d] = %q, want %q", i, hist[i], want[i])
		}
	}
	if m.Screen.HistoryLen() != 3 {
		t.Errorf("history list shows %d entries, want 3", m.Screen.HistoryLen())
	}
}

func TestApp_LengthAdjustClamps(t *testing.T) {
	m, a, _ := newTestApp(t, 10)

	press(a, "right", "right", "+")
	if m.Screen.Length != 15 {
		t.Errorf("length = %d, want 15", m.Screen.Length)
	}
	for range 40 {
		press(a, "left")
	}
	if m.Screen.Length != generator.MinLength {
		t.Errorf("length = %d, want %d", m.Screen.Length, generator.MinLength)
	}
	for range 40 {
		press(a, "right")
	}
	if m.Screen.Length != 32 {
		t.Errorf("length = %d, want 32", m.Screen.Length)
	}

	press(a, "g")
	if len(m.Screen.Password) != 32 {
		t.Errorf("password length %d, want 32", len(m.Screen.Password))
	}
}

func TestApp_CycleMode(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	press(a, "m")
	if m.Screen.Mode != generator.Readable {
		t.Errorf("mode = %s, want readable", m.Screen.Mode)
	}
	press(a, "m")
	if m.Screen.Mode != generator.LettersOnly {
		t.Errorf("mode = %s, want letters", m.Screen.Mode)
	}

	press(a, "g")
	for _, r := range m.Screen.Password {
		if !strings.ContainsRune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ", r) {
			t.Fatalf("letters-only password %q contains %q", m.Screen.Password, r)
		}
	}
}

func TestApp_Copy(t *testing.T) {
	m, a, clip := newTestApp(t, 10)

	press(a, "c")
	if len(clip.written) != 0 {
		t.Error("nothing should be copied before a password exists")
	}
	if m.Screen.Status() != "Nothing to copy yet" {
		t.Errorf("status = %q", m.Screen.Status())
	}

	press(a, "g", "c")
	if len(clip.written) != 1 || clip.written[0] != m.Screen.Password {
		t.Errorf("clipboard = %v, want [%s]", clip.written, m.Screen.Password)
	}
	if m.Screen.Status() != "Copied!" {
		t.Errorf("status = %q, want Copied!", m.Screen.Status())
	}
}

func TestApp_CopyError(t *testing.T) {
	m, a, clip := newTestApp(t, 10)
	clip.err = errors.New("no xclip")

	press(a, "g", "c")
	if !strings.Contains(m.Screen.Status(), "no xclip") {
		t.Errorf("status = %q, want copy failure", m.Screen.Status())
	}
	if m.Generator.History()[0] != m.Screen.Password {
		t.Error("clipboard failure must not affect history")
	}
}

func TestApp_StatusClearsAfterTick(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	m.StatusTTL = DefaultStatusTTL

	_, _ = a.Update(CopyMsg{})
	if m.Screen.Status() == "" {
		t.Fatal("expected status")
	}
	// A stale tick must not clear a newer status.
	_, _ = a.Update(clearStatusMsg{seq: m.statusSeq - 1})
	if m.Screen.Status() == "" {
		t.Error("stale tick cleared status")
	}
	_, _ = a.Update(clearStatusMsg{seq: m.statusSeq})
	if m.Screen.Status() != "" {
		t.Errorf("status = %q, want cleared", m.Screen.Status())
	}
}

func TestApp_ClearHistoryConfirm(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	press(a, "g", "g")

	press(a, " ", "c")
	if m.Overlays.Len() != 1 {
		t.Fatalf("expected confirm overlay, got %d overlays", m.Overlays.Len())
	}
	top, _ := m.Overlays.Peek()
	if _, ok := top.(*ConfirmModal); !ok {
		t.Fatalf("expected ConfirmModal, got %T", top)
	}

	press(a, "y")
	if m.Overlays.Len() != 0 {
		t.Errorf("expected overlay closed, got %d", m.Overlays.Len())
	}
	if n := len(m.Generator.History()); n != 0 {
		t.Errorf("history has %d entries after clear", n)
	}
	if m.Screen.HistoryLen() != 0 {
		t.Error("history list should be empty")
	}
	if m.Screen.Status() != "History cleared" {
		t.Errorf("status = %q", m.Screen.Status())
	}
}

func TestApp_ClearHistoryCancel(t *testing.T) {
	for _, k := range []string{"enter", "esc", "n"} {
		t.Run(k, func(t *testing.T) {
			m, a, _ := newTestApp(t, 10)
			press(a, "g", "g")
			_, _ = a.Update(ShowClearHistoryMsg{})
			press(a, k)
			if m.Overlays.Len() != 0 {
				t.Errorf("expected overlay closed after %s", k)
			}
			if n := len(m.Generator.History()); n != 2 {
				t.Errorf("history has %d entries, want 2", n)
			}
		})
	}
}

func TestApp_ClearHistoryWhenEmpty(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	press(a, " ", "c")
	if m.Overlays.Len() != 0 {
		t.Error("no confirmation expected for empty history")
	}
}

func TestApp_OverlayBlocksGlobalKeys(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	press(a, "g")
	_, _ = a.Update(ShowClearHistoryMsg{})

	press(a, "g", "m")
	if n := len(m.Generator.History()); n != 1 {
		t.Errorf("g under modal generated: history %d", n)
	}
	if m.Screen.Mode != generator.Full {
		t.Errorf("m under modal changed mode to %s", m.Screen.Mode)
	}
}

func TestApp_EditLength(t *testing.T) {
	m, a, _ := newTestApp(t, 10)

	press(a, "e")
	top, ok := m.Overlays.Peek()
	if !ok {
		t.Fatal("expected length modal")
	}
	modal, ok := top.(*LengthModal)
	if !ok {
		t.Fatalf("expected LengthModal, got %T", top)
	}
	if modal.Value() != "12" {
		t.Errorf("modal prefilled with %q, want 12", modal.Value())
	}

	typeKeys(a, "backspace", "backspace", "2", "0")
	press(a, "enter")
	if m.Overlays.Len() != 0 {
		t.Error("modal should close on enter")
	}
	if m.Screen.Length != 20 {
		t.Errorf("length = %d, want 20", m.Screen.Length)
	}
}

func TestApp_EditLengthClampsAndReverts(t *testing.T) {
	m, a, _ := newTestApp(t, 10)

	press(a, "e")
	typeKeys(a, "backspace", "backspace", "9", "9")
	press(a, "enter")
	if m.Screen.Length != 32 {
		t.Errorf("length = %d, want clamp to 32", m.Screen.Length)
	}
	if !strings.Contains(m.Screen.Status(), "clamped") {
		t.Errorf("status = %q", m.Screen.Status())
	}

	press(a, "e")
	typeKeys(a, "backspace", "backspace")
	press(a, "enter")
	if m.Screen.Length != 32 {
		t.Errorf("empty input should revert, length = %d", m.Screen.Length)
	}
	if m.Overlays.Len() != 0 {
		t.Error("modal should close")
	}

	press(a, "e")
	typeKeys(a, "5")
	press(a, "esc")
	if m.Screen.Length != 32 {
		t.Errorf("esc should revert, length = %d", m.Screen.Length)
	}
}

func TestApp_RestoreFromHistory(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	press(a, "g", "g", "g")
	hist := m.Generator.History()

	press(a, "tab")
	if m.Screen.Focus != FocusHistory {
		t.Fatalf("focus = %s, want History", m.Screen.Focus)
	}
	press(a, "down", "enter")
	if m.Screen.Password != hist[1] {
		t.Errorf("password = %q, want %q", m.Screen.Password, hist[1])
	}
	if n := len(m.Generator.History()); n != 3 {
		t.Errorf("restoring must not add history, got %d", n)
	}

	press(a, "tab")
	if m.Screen.Focus != FocusControls {
		t.Errorf("focus = %s, want Controls", m.Screen.Focus)
	}
}

func TestApp_TabIgnoredWithEmptyHistory(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	press(a, "tab")
	if m.Screen.Focus != FocusControls {
		t.Error("history focus needs entries")
	}
}

func TestApp_Quit(t *testing.T) {
	_, a, _ := newTestApp(t, 10)
	if !press(a, "q") {
		t.Error("q should quit")
	}
	if !press(a, " ", "q") {
		t.Error("SPC q should quit")
	}

	_, _ = a.Update(ShowClearHistoryMsg{})
	_, _ = a.Update(ShowEditLengthMsg{})
	if !press(a, "ctrl+c") {
		t.Error("ctrl+c should quit even with a modal open")
	}
}

func TestApp_View(t *testing.T) {
	m, a, _ := newTestApp(t, 10)
	out := a.View()
	if !strings.Contains(out, "Password Generator") || !strings.Contains(out, "No passwords yet") {
		t.Errorf("unexpected initial view:\n%s", out)
	}

	press(a, "g")
	out = a.View()
	if !strings.Contains(out, m.Screen.Password) {
		t.Error("view should show the current password")
	}
	if !strings.Contains(out, "History (1/10)") {
		t.Errorf("view missing history header:\n%s", out)
	}

	_, _ = a.Update(ShowClearHistoryMsg{})
	if !strings.Contains(a.View(), "Clear history?") {
		t.Error("view should render the confirm modal")
	}
}

func TestNewAppModel_Defaults(t *testing.T) {
	m := NewAppModel(Deps{Length: 2, MaxLength: 16, Mode: "bogus"})
	if m.Generator == nil || m.Logger == nil {
		t.Fatal("expected default generator and logger")
	}
	if m.Screen.Length != generator.MinLength {
		t.Errorf("length = %d, want clamp to %d", m.Screen.Length, generator.MinLength)
	}
	if m.Screen.Mode != generator.Full {
		t.Errorf("mode = %s, want full", m.Screen.Mode)
	}
	if m.Screen.Capacity != generator.DefaultCapacity {
		t.Errorf("capacity = %d", m.Screen.Capacity)
	}
}
