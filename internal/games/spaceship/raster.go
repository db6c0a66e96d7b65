package spaceship

import (
	"math"

	"github.com/vovakirdan/tui-spaceship/internal/core"
)

// ScreenPainter rasterizes canvas shapes onto a character screen where each
// cell covers cellW x cellH canvas pixels.
type ScreenPainter struct {
	dst   *core.Screen
	cellW float64
	cellH float64
}

// NewScreenPainter creates a painter drawing into dst.
func NewScreenPainter(dst *core.Screen, cellW, cellH int) *ScreenPainter {
	return &ScreenPainter{
		dst:   dst,
		cellW: float64(core.Max(cellW, 1)),
		cellH: float64(core.Max(cellH, 1)),
	}
}

// cell maps a canvas pixel to the screen cell containing it.
func (p *ScreenPainter) cell(x, y float64) (int, int) {
	return int(math.Floor(x / p.cellW)), int(math.Floor(y / p.cellH))
}

// Background clears the screen. Terminal cells have no background color.
func (p *ScreenPainter) Background(_, _ float64) {
	p.dst.Clear()
}

// Rect marks the cell at the rectangle's origin. Larger stars get a
// brighter glyph.
func (p *ScreenPainter) Rect(x, y, w, h float64, c core.Color) {
	cx, cy := p.cell(x, y)
	r := '.'
	if w*h >= 9 {
		r = '+'
	}
	p.dst.SetCell(cx, cy, r, c)
}

// Triangle draws ships as three-cell glyphs on the base row and shots as a
// single bar.
func (p *ScreenPainter) Triangle(x, y, size float64, dir Direction, c core.Color) {
	cx, cy := p.cell(x, y)
	if size < p.cellW {
		p.dst.SetCell(cx, cy, '│', c)
		return
	}

	glyph := [3]rune{'◢', '▲', '◣'}
	if dir == Down {
		glyph = [3]rune{'◥', '▼', '◤'}
	}
	for i, r := range glyph {
		p.dst.SetCell(cx-1+i, cy, r, c)
	}
}

// Text writes s starting at the cell containing (x, y).
func (p *ScreenPainter) Text(x, y float64, s string, c core.Color) {
	cx, cy := p.cell(x, y)
	p.dst.DrawText(cx, cy, s, c)
}
