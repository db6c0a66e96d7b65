package window

import (
	"image"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/tui-spaceship/internal/core"
	"github.com/vovakirdan/tui-spaceship/internal/games/spaceship"
)

var (
	fontFace = text.NewGoXFace(basicfont.Face7x13)

	// whiteSubImage is the source texture for solid triangles. It is created
	// lazily because images cannot be made before the game loop starts.
	whiteOnce     sync.Once
	whiteSubImage *ebiten.Image
)

func solidTexture() *ebiten.Image {
	whiteOnce.Do(func() {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whiteSubImage = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	})
	return whiteSubImage
}

// rgba converts a palette color to an opaque RGBA value.
func rgba(c core.Color) color.RGBA {
	r, g, b := c.RGB()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ImagePainter draws canvas shapes onto an ebiten image.
type ImagePainter struct {
	dst *ebiten.Image
}

// NewImagePainter creates a painter drawing into dst.
func NewImagePainter(dst *ebiten.Image) *ImagePainter {
	return &ImagePainter{dst: dst}
}

// Background fills the canvas with black.
func (p *ImagePainter) Background(_, _ float64) {
	p.dst.Fill(color.Black)
}

// Rect fills an axis-aligned rectangle.
func (p *ImagePainter) Rect(x, y, w, h float64, c core.Color) {
	vector.DrawFilledRect(p.dst, float32(x), float32(y), float32(w), float32(h), rgba(c), false)
}

// Triangle fills the triangle described by spaceship.TriangleVertices.
func (p *ImagePainter) Triangle(x, y, size float64, dir spaceship.Direction, c core.Color) {
	pts := spaceship.TriangleVertices(x, y, size, dir)
	r, g, b, a := rgba(c).RGBA()

	vs := make([]ebiten.Vertex, len(pts))
	for i, pt := range pts {
		vs[i] = ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: float32(r) / 0xffff,
			ColorG: float32(g) / 0xffff,
			ColorB: float32(b) / 0xffff,
			ColorA: float32(a) / 0xffff,
		}
	}
	p.dst.DrawTriangles(vs, []uint16{0, 1, 2}, solidTexture(), &ebiten.DrawTrianglesOptions{})
}

// Text draws s with its baseline at y, like a canvas fillText.
func (p *ImagePainter) Text(x, y float64, s string, c core.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-fontFace.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(rgba(c))
	text.Draw(p.dst, s, fontFace, op)
}
