package ui

// GenerateMsg requests a new password with the current length and mode (g, Enter).
type GenerateMsg struct{}

// CopyMsg copies the current password to the clipboard (c).
type CopyMsg struct{}

// CycleModeMsg switches to the next generation mode (m).
type CycleModeMsg struct{}

// ShowEditLengthMsg opens the length input modal (e).
type ShowEditLengthMsg struct{}

// SetLengthMsg is sent by the length modal; Length is clamped by the view.
type SetLengthMsg struct {
	Length int
}

// ShowClearHistoryMsg opens the clear-history confirmation (SPC c).
type ShowClearHistoryMsg struct{}

// ClearHistoryMsg is sent when the user confirms clearing history.
type ClearHistoryMsg struct{}

// DismissModalMsg closes the top overlay (Esc, or a cancelled prompt).
type DismissModalMsg struct{}

// clearStatusMsg resets the status line if it still shows status seq.
type clearStatusMsg struct {
	seq int
}
