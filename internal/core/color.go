package core

// Color represents a foreground color for a screen cell or a canvas shape.
// Terminal frontends map it to ANSI 256-color codes, the window frontend to
// 24-bit RGB via RGB.
type Color uint8

// Predefined colors for game elements.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightCyan
	ColorBrightWhite
	ColorGray
)

// RGB returns the 24-bit value of the color.
// ColorDefault renders as white, like an unstyled terminal cell.
func (c Color) RGB() (r, g, b uint8) {
	switch c {
	case ColorBlack:
		return 0x00, 0x00, 0x00
	case ColorRed:
		return 0xcc, 0x00, 0x00
	case ColorGreen:
		return 0x00, 0xcc, 0x00
	case ColorYellow:
		return 0xcc, 0xcc, 0x00
	case ColorCyan:
		return 0x00, 0xcc, 0xcc
	case ColorWhite:
		return 0xe5, 0xe5, 0xe5
	case ColorBrightRed:
		return 0xff, 0x00, 0x00
	case ColorBrightGreen:
		return 0x00, 0xff, 0x00
	case ColorBrightYellow:
		return 0xff, 0xff, 0x00
	case ColorBrightCyan:
		return 0x00, 0xff, 0xff
	case ColorGray:
		return 0x8a, 0x8a, 0x8a
	default:
		return 0xff, 0xff, 0xff
	}
}
