package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionTap          // Space, Enter, T - tap the button
	ActionReset        // R - start over with a fresh round
	ActionAbout        // A, ? - toggle the about dialog
	ActionBack         // Esc, B - close the about dialog
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTap:
		return "Tap"
	case ActionReset:
		return "Reset"
	case ActionAbout:
		return "About"
	case ActionBack:
		return "Back"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered between two frames.
// Taps are counted rather than flagged: a fast player can tap more than
// once per frame and every tap scores.
type InputFrame struct {
	counts map[Action]int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{counts: make(map[Action]int)}
}

// Set records one occurrence of an action.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	if f.counts == nil {
		f.counts = make(map[Action]int)
	}
	f.counts[a]++
}

// Has returns true if the action was triggered at least once.
func (f InputFrame) Has(a Action) bool {
	return f.counts[a] > 0
}

// Count returns how many times the action was triggered.
func (f InputFrame) Count(a Action) int {
	return f.counts[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.counts {
		delete(f.counts, k)
	}
}
