package spaceship

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-spaceship/internal/config"
	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// Star is one background star. Size is the side of its square in pixels.
type Star struct {
	X, Y float64
	Size float64
}

// StarField is a fixed pool of stars scrolling down the canvas.
// Stars are created once and recycled by wrapping to the top.
type StarField struct {
	stars  []Star
	height float64
	speed  float64
	tick   core.Interval
}

// NewStarField scatters cfg.Count stars over a width x height canvas.
func NewStarField(rng *rand.Rand, cfg config.SpaceshipStars, every time.Duration, width, height float64) *StarField {
	sf := &StarField{
		stars:  make([]Star, cfg.Count),
		height: height,
		speed:  cfg.Speed,
		tick:   core.NewInterval(every, 0),
	}
	for i := range sf.stars {
		sf.stars[i] = Star{
			X:    float64(int(rng.Float64() * width)),
			Y:    float64(int(rng.Float64() * height)),
			Size: rng.Float64()*(cfg.MaxSize-cfg.MinSize) + cfg.MinSize,
		}
	}
	return sf
}

// Update runs one scroll step per star tick elapsed up to now.
func (sf *StarField) Update(now time.Duration) {
	for n := sf.tick.Due(now); n > 0; n-- {
		sf.step()
	}
}

// step moves every star down, wrapping at the bottom edge so that
// 0 <= y < height always holds.
func (sf *StarField) step() {
	for i := range sf.stars {
		s := &sf.stars[i]
		s.Y += sf.speed
		if s.Y >= sf.height {
			s.Y = 0
		}
	}
}

// Stars returns a copy of the current star positions.
func (sf *StarField) Stars() []Star {
	out := make([]Star, len(sf.stars))
	copy(out, sf.stars)
	return out
}
