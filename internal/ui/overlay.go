package ui

import tea "github.com/charmbracelet/bubbletea"

// OverlayStack holds modal views drawn over the generator screen.
// Only the topmost overlay receives input.
type OverlayStack struct {
	views []View
}

// Push adds v on top.
func (s *OverlayStack) Push(v View) {
	s.views = append(s.views, v)
}

// Pop removes the top overlay. Returns false if the stack was empty.
func (s *OverlayStack) Pop() (View, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	top := s.views[len(s.views)-1]
	s.views[len(s.views)-1] = nil
	s.views = s.views[:len(s.views)-1]
	return top, true
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (View, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	return s.views[len(s.views)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.views)
}

// UpdateTop routes msg to the top overlay and stores the updated view.
// The bool is false when no overlay is open.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	i := len(s.views) - 1
	v, cmd := s.views[i].Update(msg)
	s.views[i] = v
	return cmd, true
}
