package ui

// Focus is the region of the generator screen that receives navigation keys.
type Focus int

const (
	FocusControls Focus = iota
	FocusHistory
)

func (f Focus) String() string {
	switch f {
	case FocusControls:
		return "Controls"
	case FocusHistory:
		return "History"
	default:
		return "Unknown"
	}
}

// Toggle returns the other region.
func (f Focus) Toggle() Focus {
	if f == FocusHistory {
		return FocusControls
	}
	return FocusHistory
}
