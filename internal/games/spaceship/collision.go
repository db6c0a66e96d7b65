package spaceship

import "github.com/vovakirdan/tui-spaceship/internal/core"

// GameOver reports whether the ship overlaps a live enemy or any enemy shot.
// Shots of dead enemies still count.
func GameOver(ship core.Point, enemies []*Enemy, margin float64) bool {
	for _, e := range enemies {
		if !e.Dead && core.Collide(ship, e.Pos(), margin) {
			return true
		}
		for _, s := range e.Shots {
			if core.Collide(ship, s.Pos(), margin) {
				return true
			}
		}
	}
	return false
}

// firstHit returns the first live enemy, in list order, within margin of p.
func firstHit(p core.Point, enemies []*Enemy, margin float64) *Enemy {
	for _, e := range enemies {
		if !e.Dead && core.Collide(p, e.Pos(), margin) {
			return e
		}
	}
	return nil
}
