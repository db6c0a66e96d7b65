package spaceship

import (
	"fmt"

	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// Direction is where a triangle's tip points.
type Direction int

const (
	Up Direction = iota
	Down
)

// Shape sizes in canvas pixels.
const (
	ShipSize = 20
	ShotSize = 5
)

// scorePos is where the score text is drawn.
var scorePos = core.Pt(40, 43)

// TriangleVertices returns the three corners of an isosceles triangle whose
// base runs from x-width to x+width at y and whose tip is width pixels
// above (Up) or below (Down) the base.
func TriangleVertices(x, y, width float64, dir Direction) [3]core.Point {
	tipY := y - width
	if dir == Down {
		tipY = y + width
	}
	return [3]core.Point{
		core.Pt(x-width, y),
		core.Pt(x, tipY),
		core.Pt(x+width, y),
	}
}

// Painter is a drawing surface in canvas pixel coordinates.
type Painter interface {
	// Background clears the whole canvas to black.
	Background(width, height float64)
	Rect(x, y, w, h float64, c core.Color)
	Triangle(x, y, size float64, dir Direction, c core.Color)
	Text(x, y float64, s string, c core.Color)
}

// Paint draws a snapshot in a fixed back-to-front order: background, stars,
// ship, live enemies, every enemy shot, hero shots, score.
func Paint(s Snapshot, p Painter) {
	p.Background(s.Width, s.Height)

	for _, st := range s.Stars {
		p.Rect(st.X, st.Y, st.Size, st.Size, core.ColorBrightWhite)
	}

	p.Triangle(s.Ship.X, s.Ship.Y, ShipSize, Up, core.ColorBrightRed)

	for _, e := range s.Enemies {
		if !e.Dead {
			p.Triangle(e.X, e.Y, ShipSize, Down, core.ColorBrightGreen)
		}
	}
	for _, e := range s.Enemies {
		for _, shot := range e.Shots {
			p.Triangle(shot.X, shot.Y, ShotSize, Down, core.ColorBrightCyan)
		}
	}

	for _, shot := range s.HeroShots {
		if shot.Index > 0 {
			p.Triangle(shot.X, shot.Y, ShotSize, Up, core.ColorBrightYellow)
		}
	}

	p.Text(scorePos.X, scorePos.Y, fmt.Sprintf("Score: %d", s.Score), core.ColorBrightWhite)
}
