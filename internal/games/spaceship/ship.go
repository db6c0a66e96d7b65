package spaceship

import "github.com/vovakirdan/tui-spaceship/internal/core"

// Ship is the player's spaceship. Y never changes during a session.
type Ship struct {
	X, Y float64
}

// Pos returns the ship position as a point.
func (s Ship) Pos() core.Point {
	return core.Pt(s.X, s.Y)
}

// ShipTracker projects pointer input onto the ship position.
type ShipTracker struct {
	ship  Ship
	width float64
}

// NewShipTracker places the ship at the horizontal center, on the hero row.
func NewShipTracker(width, heroY float64) *ShipTracker {
	return &ShipTracker{
		ship:  Ship{X: width / 2, Y: heroY},
		width: width,
	}
}

// Track moves the ship to the latest pointer X.
func (t *ShipTracker) Track(x float64) {
	t.ship.X = x
}

// Nudge moves the ship by dx, keeping it on the canvas.
func (t *ShipTracker) Nudge(dx float64) {
	t.ship.X = core.ClampF(t.ship.X+dx, 0, t.width)
}

// Ship returns the last known ship position.
func (t *ShipTracker) Ship() Ship {
	return t.ship
}
