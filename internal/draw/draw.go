// Package draw renders to ANSI terminals: a colour canvas with 2x vertical
// resolution built from half-block characters, and a chunked writer for
// text overlays.
package draw

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Ink is a canvas pixel colour. InkNone leaves the pixel empty.
type Ink uint8

const (
	InkNone Ink = iota
	InkWhite
	InkGray
	InkOrange
	InkGold
	InkGreen
	InkOlive
	InkBrown
	InkTan
	InkMagenta
	InkViolet
	InkBlue
	inkCount
)

// palette maps inks to xterm-256 colour indices.
var palette = [inkCount]uint8{
	InkNone:    0,
	InkWhite:   255,
	InkGray:    245,
	InkOrange:  208,
	InkGold:    220,
	InkGreen:   70,
	InkOlive:   100,
	InkBrown:   94,
	InkTan:     180,
	InkMagenta: 170,
	InkViolet:  97,
	InkBlue:    75,
}

// Color256 returns the xterm-256 colour index for the ink.
func (i Ink) Color256() uint8 {
	if i >= inkCount {
		return palette[InkWhite]
	}
	return palette[i]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
