package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pwgen/internal/generator"
	"pwgen/internal/telemetry"
)

// DefaultStatusTTL is how long transient status messages stay visible.
const DefaultStatusTTL = 1500 * time.Millisecond

// Deps is the process-wide context the UI runs with. main builds it at
// startup and tears down what needs it (tracer) after the program exits.
type Deps struct {
	Generator *generator.Generator
	Clipboard Clipboard
	Tracer    *telemetry.Tracer // nil disables tracing
	Logger    *slog.Logger      // nil discards

	Length    int
	MaxLength int
	Mode      generator.Mode
}

// AppModel is the root model: the generator screen plus modal overlays.
type AppModel struct {
	Screen     *GeneratorView
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Generator  *generator.Generator
	Clipboard  Clipboard
	Tracer     *telemetry.Tracer
	Logger     *slog.Logger
	StatusTTL  time.Duration

	statusSeq int
	width     int
	height    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root model from deps.
func NewAppModel(deps Deps) *AppModel {
	gen := deps.Generator
	if gen == nil {
		gen = generator.New()
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	mode := deps.Mode
	if !mode.Valid() {
		mode = generator.Full
	}
	return &AppModel{
		Screen:     NewGeneratorView(deps.Length, deps.MaxLength, mode, gen.Capacity()),
		KeyHandler: NewKeyHandler(defaultRegistry()),
		Generator:  gen,
		Clipboard:  deps.Clipboard,
		Tracer:     deps.Tracer,
		Logger:     logger,
		StatusTTL:  DefaultStatusTTL,
	}
}

func defaultRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("g", func() tea.Msg { return GenerateMsg{} }, "Generate")
	reg.BindWithDesc("c", func() tea.Msg { return CopyMsg{} }, "Copy")
	reg.BindWithDesc("m", func() tea.Msg { return CycleModeMsg{} }, "Next mode")
	reg.BindWithDesc("e", func() tea.Msg { return ShowEditLengthMsg{} }, "Edit length")
	reg.BindWithDesc("SPC g", func() tea.Msg { return GenerateMsg{} }, "Generate")
	reg.BindWithDesc("SPC y", func() tea.Msg { return CopyMsg{} }, "Copy password")
	reg.BindWithDesc("SPC c", func() tea.Msg { return ShowClearHistoryMsg{} }, "Clear history")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Screen.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		_, cmd := a.Screen.Update(msg)
		return a, cmd
	case GenerateMsg:
		return a, a.generate()
	case CopyMsg:
		return a, a.copyPassword()
	case CycleModeMsg:
		a.Screen.Mode = a.Screen.Mode.Next()
		return a, nil
	case ShowEditLengthMsg:
		modal := NewLengthModal(a.Screen.Length, a.Screen.MinLength, a.Screen.MaxLength)
		a.Overlays.Push(modal)
		return a, modal.Init()
	case SetLengthMsg:
		a.Overlays.Pop()
		a.Screen.SetLength(msg.Length)
		if a.Screen.Length != msg.Length {
			return a, a.setStatus(fmt.Sprintf("Length clamped to %d", a.Screen.Length), false)
		}
		return a, nil
	case ShowClearHistoryMsg:
		n := len(a.Generator.History())
		if n == 0 {
			return a, a.setStatus("History is already empty", false)
		}
		a.Overlays.Push(NewClearHistoryConfirmModal(n))
		return a, nil
	case ClearHistoryMsg:
		a.Overlays.Pop()
		return a, a.clearHistory()
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case clearStatusMsg:
		if msg.seq == a.statusSeq {
			a.Screen.SetStatus("", false)
		}
		return a, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if cmd, ok := a.Overlays.UpdateTop(msg); ok {
			return a, cmd
		}
		if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
			return a, cmd
		}
	}

	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	_, cmd := a.Screen.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if top, ok := a.Overlays.Peek(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View())
		}
		return top.View()
	}
	base := a.Screen.View()
	if help := RenderKeybindHelp(a.KeyHandler); help != "" {
		base += "\n" + help
	}
	return base
}

func (m *AppModel) generate() tea.Cmd {
	length, mode := m.Screen.Length, m.Screen.Mode
	pw, err := m.Generator.Generate(length, mode)
	m.Tracer.RecordGeneration(context.Background(), length, mode.String(), err)
	if err != nil {
		m.Logger.Warn("generate failed", "length", length, "mode", mode, "err", err)
		return m.setStatus(generateErrorText(err), true)
	}
	m.Logger.Debug("generated password", "length", length, "mode", mode)
	m.Screen.Password = pw
	m.Screen.SetStatus("", false)
	return m.Screen.SetHistory(m.Generator.History())
}

func generateErrorText(err error) string {
	switch {
	case errors.Is(err, generator.ErrInvalidLength):
		return fmt.Sprintf("Length must be at least %d", generator.MinLength)
	case errors.Is(err, generator.ErrUnknownMode):
		return "Unknown mode"
	default:
		return "Could not generate password: " + err.Error()
	}
}

func (m *AppModel) copyPassword() tea.Cmd {
	if m.Screen.Password == "" {
		return m.setStatus("Nothing to copy yet", false)
	}
	if m.Clipboard == nil {
		return m.setStatus("Clipboard unavailable", true)
	}
	err := m.Clipboard.WriteAll(m.Screen.Password)
	m.Tracer.RecordCopy(context.Background(), err)
	if err != nil {
		m.Logger.Warn("clipboard write failed", "err", err)
		return m.setStatus("Copy failed: "+err.Error(), true)
	}
	return m.setStatus("Copied!", false)
}

func (m *AppModel) clearHistory() tea.Cmd {
	n := len(m.Generator.History())
	m.Generator.ClearHistory()
	m.Tracer.RecordClear(context.Background(), n)
	m.Logger.Info("history cleared", "removed", n)
	return tea.Batch(
		m.Screen.SetHistory(nil),
		m.setStatus("History cleared", false),
	)
}

// setStatus shows msg and schedules it to disappear after StatusTTL.
func (m *AppModel) setStatus(msg string, isErr bool) tea.Cmd {
	m.statusSeq++
	seq := m.statusSeq
	m.Screen.SetStatus(msg, isErr)
	if m.StatusTTL <= 0 {
		return nil
	}
	return tea.Tick(m.StatusTTL, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
}
