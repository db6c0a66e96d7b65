package core

// Action represents a semantic game action, abstracted from physical input.
// This allows games to work with high-level intents rather than raw events.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A - nudge the ship left
	ActionRight        // Right arrow, D - nudge the ship right
	ActionFire         // Space, mouse click - fire a hero shot
	ActionPause        // P - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame and the
// latest pointer position, if the pointer moved.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer is the last pointer position in canvas pixels.
	// Only meaningful when PointerMoved is set.
	Pointer      Point
	PointerMoved bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// MovePointer records a pointer position. Later calls within the same frame
// overwrite earlier ones; only the latest position matters.
func (f *InputFrame) MovePointer(p Point) {
	f.Pointer = p
	f.PointerMoved = true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = Point{}
	f.PointerMoved = false
}

// PointerTracker turns polled cursor positions into pointer movement.
// The first position it sees is only recorded, so a cursor that has not
// moved yet does not count as input.
type PointerTracker struct {
	x, y int
	seen bool
}

// Moved records the cursor at (x, y) and reports whether it differs from
// the previous position.
func (t *PointerTracker) Moved(x, y int) bool {
	if !t.seen {
		t.x, t.y, t.seen = x, y, true
		return false
	}
	if x == t.x && y == t.y {
		return false
	}
	t.x, t.y = x, y
	return true
}
