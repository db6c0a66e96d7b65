package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-spaceship/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"space fires", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionFire, false},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"p pauses", runeKey('p'), core.ActionPause, false},
		{"esc quits", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit, true},
		{"q quits", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action || quit != tc.quit {
				t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)", tc.msg.String(), action, quit, tc.action, tc.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('a'), &frame) {
		t.Error("a should not quit")
	}
	km.MapKeyToFrame(runeKey('z'), &frame)

	if !frame.Has(core.ActionLeft) {
		t.Error("frame should have Left")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound keys should not be recorded")
	}
}

func TestMouseMapper(t *testing.T) {
	mm := MouseMapper{CellW: 10, CellH: 20}

	if got := mm.ToCanvas(12, 3); got != core.Pt(125, 70) {
		t.Errorf("ToCanvas(12, 3) = %v, expected (125, 70)", got)
	}

	frame := core.NewInputFrame()
	mm.MapMouseToFrame(tea.MouseMsg{X: 4, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame)
	if !frame.PointerMoved || frame.Pointer.X != 45 {
		t.Errorf("pointer = %v, expected x 45", frame.Pointer)
	}
	if frame.Has(core.ActionFire) {
		t.Error("motion should not fire")
	}

	mm.MapMouseToFrame(tea.MouseMsg{X: 6, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if !frame.Has(core.ActionFire) {
		t.Error("left press should fire")
	}
	if frame.Pointer.X != 65 {
		t.Errorf("pointer x = %v, expected 65", frame.Pointer.X)
	}
}

func TestHelpBindings(t *testing.T) {
	keys := DefaultKeyMap()
	if len(keys.ShortHelp()) == 0 {
		t.Error("short help should list bindings")
	}
	n := 0
	for _, col := range keys.FullHelp() {
		n += len(col)
	}
	if n != 6 {
		t.Errorf("full help lists %d bindings, expected 6", n)
	}
}
