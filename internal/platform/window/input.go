package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// inputReader polls ebiten input once per tick.
type inputReader struct {
	pointer core.PointerTracker
}

// read fills frame with this tick's input. It reports whether quit was
// requested. The ship stays put until the cursor actually moves.
func (r *inputReader) read(frame *core.InputFrame) bool {
	x, y := ebiten.CursorPosition()
	if r.pointer.Moved(x, y) {
		frame.MovePointer(core.Pt(float64(x), float64(y)))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		frame.Set(core.ActionFire)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		frame.Set(core.ActionLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		frame.Set(core.ActionRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		frame.Set(core.ActionPause)
	}

	return inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
