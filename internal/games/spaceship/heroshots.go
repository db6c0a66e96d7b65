package spaceship

import "github.com/vovakirdan/tui-spaceship/internal/core"

// parkedPos is where a hero shot is moved after it destroys an enemy.
var parkedPos = core.Pt(-100, -100)

// Shot is a projectile. Hero shots carry the fire index that created them;
// enemy shots leave it at zero.
type Shot struct {
	X, Y  float64
	Index int
}

// Pos returns the shot position as a point.
func (s Shot) Pos() core.Point {
	return core.Pt(s.X, s.Y)
}

// HeroShots is the ordered collection of shots fired by the player.
//
// Shots that hit an enemy are parked off-canvas rather than removed, and
// missed shots keep climbing forever, so the collection only grows unless
// pruning is enabled.
type HeroShots struct {
	shots     []Shot
	lastIndex int
}

// NewHeroShots creates an empty collection. The start-up fire index 0 is
// treated as already seen.
func NewHeroShots() *HeroShots {
	return &HeroShots{}
}

// Update appends a shot at (x, heroY) when index changed since the last
// call. Change is detected on the index alone, so the ship moving does not
// fire and sampling the same index twice does not duplicate a shot.
func (h *HeroShots) Update(index int, x, heroY float64) bool {
	if index == h.lastIndex {
		return false
	}
	h.lastIndex = index
	if index <= 0 {
		return false
	}
	h.shots = append(h.shots, Shot{X: x, Y: heroY, Index: index})
	return true
}

// Advance resolves hits against enemies and moves the remaining shots up by
// speed. Every shot that destroyed an enemy is parked and not moved this
// tick. It returns the positions of the enemies destroyed.
func (h *HeroShots) Advance(enemies []*Enemy, speed, margin float64) []core.Point {
	var hits []core.Point
	for i := range h.shots {
		shot := &h.shots[i]
		if shot.Index <= 0 {
			continue
		}
		if target := firstHit(shot.Pos(), enemies, margin); target != nil {
			target.Dead = true
			hits = append(hits, target.Pos())
			shot.X, shot.Y = parkedPos.X, parkedPos.Y
			continue
		}
		shot.Y -= speed
	}
	return hits
}

// Prune drops shots outside the canvas margin. Parked shots go with them.
func (h *HeroShots) Prune(width, height, margin float64) {
	kept := h.shots[:0]
	for _, s := range h.shots {
		if core.Visible(s.Pos(), width, height, margin) {
			kept = append(kept, s)
		}
	}
	h.shots = kept
}

// Shots returns a copy of the shots.
func (h *HeroShots) Shots() []Shot {
	out := make([]Shot, len(h.shots))
	copy(out, h.shots)
	return out
}
