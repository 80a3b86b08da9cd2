package ui

// Key names the keyboard keys the core widgets care about.
type Key int

const (
	KeyEscape Key = iota
	KeyEnter
	KeyQ
)

// Input is a point-in-time snapshot of one frame's pointer and key state.
type Input struct {
	CursorX, CursorY float64

	// Primary button state. Pressed and Released are edges for this frame.
	// A Released edge ends any capture even if Down is still reported.
	Down     bool
	Pressed  bool
	Released bool

	Keys map[Key]bool
}

// KeyDown reports whether k is held in this frame.
func (in Input) KeyDown(k Key) bool { return in.Keys[k] }

// Over reports whether the cursor lies inside r.
func (in Input) Over(r Rect) bool { return r.Contains(in.CursorX, in.CursorY) }
