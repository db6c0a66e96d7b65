package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Fire       key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Pause, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Fire},
		{k.Pause, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default game bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space/click", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings, for the help view.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, km.keys.Left):
		return core.ActionLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.ActionRight, false
	case key.Matches(msg, km.keys.Fire):
		return core.ActionFire, false
	case key.Matches(msg, km.keys.Pause):
		return core.ActionPause, false
	}
	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MouseMapper translates terminal mouse reports to canvas input.
// Each terminal cell covers CellW x CellH canvas pixels.
type MouseMapper struct {
	CellW int
	CellH int
}

// ToCanvas returns the canvas pixel at the center of a terminal cell.
func (mm MouseMapper) ToCanvas(col, row int) core.Point {
	return core.Pt(
		float64(col*mm.CellW+mm.CellW/2),
		float64(row*mm.CellH+mm.CellH/2),
	)
}

// MapMouseToFrame records the pointer position of any mouse report and a
// fire action for a left button press.
func (mm MouseMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	frame.MovePointer(mm.ToCanvas(msg.X, msg.Y))
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionFire)
	}
}
