package draw

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
)

// Canvas is a colour drawing buffer with 2x vertical resolution using
// half-block characters. Supports scaling from logical coordinates to actual
// terminal pixels.
type Canvas struct {
	termWidth      int   // Actual terminal columns
	termHeight     int   // Actual terminal rows
	subPixelHeight int   // termHeight * 2
	pixels         []Ink // Flat slice: [y * termWidth + x]

	// Last rendered frame, used to emit only changed cells. A cell is
	// stale when its entry is invalid and must be rewritten.
	prev  []cell
	valid []bool

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Offset for centering the render area when terminal is larger than max resolution.
	// These are 0-based terminal offsets (columns/rows to skip).
	offsetCol int
	offsetRow int

	// Reusable buffers to reduce allocations
	renderBuf       strings.Builder
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// cell is a rendered terminal cell: the inks of its two halves.
type cell struct {
	top, bottom Ink
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by the game.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	subPixelHeight := termHeight * 2
	return &Canvas{
		termWidth:      termWidth,
		termHeight:     termHeight,
		subPixelHeight: subPixelHeight,
		pixels:         make([]Ink, subPixelHeight*termWidth),
		prev:           make([]cell, termHeight*termWidth),
		valid:          make([]bool, termHeight*termWidth),
		logicalWidth:   logicalWidth,
		logicalHeight:  logicalHeight,
		scaleX:         float64(termWidth) / logicalWidth,
		scaleY:         float64(subPixelHeight) / logicalHeight,
	}
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]Ink, subPixelHeight*termWidth)
		c.prev = make([]cell, termHeight*termWidth)
		c.valid = make([]bool, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// ForceRedraw marks every cell stale so the next Render rewrites the whole
// area. Call after the terminal was cleared.
func (c *Canvas) ForceRedraw() {
	clear(c.valid)
}

// MarkTextDirty marks n cells starting at the 1-based canvas position
// (col, row) stale, so text written over the canvas is erased next frame.
func (c *Canvas) MarkTextDirty(col, row, n int) {
	row--
	col--
	if row < 0 || row >= c.termHeight {
		return
	}
	for x := max(col, 0); x < col+n && x < c.termWidth; x++ {
		c.valid[row*c.termWidth+x] = false
	}
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// At returns the ink at actual pixel coordinates, InkNone outside the canvas.
func (c *Canvas) At(x, y int) Ink {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		return c.pixels[y*c.termWidth+x]
	}
	return InkNone
}

// SetFloat sets a pixel using float logical coordinates (applies scaling).
func (c *Canvas) SetFloat(x, y float64, ink Ink) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	c.setPixel(px, py, ink)
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, ink Ink) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, ink)

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// DrawPolygon draws a polygon on the canvas.
// If filled is true, the interior is filled using scanline algorithm.
func (c *Canvas) DrawPolygon(points []Point, ink Ink, filled bool) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, ink)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], ink)
	}
}

// DrawRect outlines an axis-aligned rectangle given in logical space.
func (c *Canvas) DrawRect(x, y, w, h float64, ink Ink) {
	tl := Point{X: x, Y: y}
	tr := Point{X: x + w, Y: y}
	br := Point{X: x + w, Y: y + h}
	bl := Point{X: x, Y: y + h}
	c.DrawLine(tl, tr, ink)
	c.DrawLine(tr, br, ink)
	c.DrawLine(br, bl, ink)
	c.DrawLine(bl, tl, ink)
}

// FillEllipse fills the ellipse inscribed in the given logical rectangle.
func (c *Canvas) FillEllipse(x, y, w, h float64, ink Ink) {
	const segments = 16
	points := c.BorrowPoints(segments)
	cx, cy := x+w/2, y+h/2
	for i := range points {
		a := float64(i) * 2 * math.Pi / segments
		points[i] = Point{X: cx + math.Cos(a)*w/2, Y: cy + math.Sin(a)*h/2}
	}
	c.DrawPolygon(points, ink, true)
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, ink Ink) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := int(math.Floor(minY))
	yEnd := int(math.Ceil(maxY))
	if yStart < 0 {
		yStart = 0
	}
	if yEnd >= c.subPixelHeight {
		yEnd = c.subPixelHeight - 1
	}

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, ink)
			}
		}
	}
}

// maxChunkSize caps a single write so each chunk plus SSH framing stays
// under a typical 1500-byte MTU.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using coloured half-block characters.
// A cell whose halves differ in colour draws the top half in the foreground
// and the bottom half in the background colour. Only cells that changed
// since the previous Render (or were marked stale) are written.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 8)

	var fg, bg int = -1, -1 // Current SGR colours; -1 is the terminal default
	setColors := func(f, b int) {
		if f != fg {
			fmt.Fprintf(&c.renderBuf, "\033[38;5;%dm", f)
			fg = f
		}
		if b != bg {
			if b < 0 {
				c.renderBuf.WriteString("\033[49m")
			} else {
				fmt.Fprintf(&c.renderBuf, "\033[48;5;%dm", b)
			}
			bg = b
		}
	}

	for row := 0; row < c.termHeight; row++ {
		topOffset := row * 2 * c.termWidth
		bottomOffset := (row*2 + 1) * c.termWidth

		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOffset+col]
			bottom := c.pixels[bottomOffset+col]
			idx := row*c.termWidth + col
			cur := cell{top: top, bottom: bottom}
			if c.valid[idx] && c.prev[idx] == cur {
				continue
			}
			c.prev[idx] = cur
			c.valid[idx] = true

			var ch rune
			switch {
			case top == InkNone && bottom == InkNone:
				ch = ' '
				if fg != -1 || bg != -1 {
					c.renderBuf.WriteString("\033[0m")
					fg, bg = -1, -1
				}
			case top == bottom:
				ch = BlockFull
				setColors(int(top.Color256()), -1)
			case bottom == InkNone:
				ch = BlockUpperHalf
				setColors(int(top.Color256()), -1)
			case top == InkNone:
				ch = BlockLowerHalf
				setColors(int(bottom.Color256()), -1)
			default:
				ch = BlockUpperHalf
				setColors(int(top.Color256()), int(bottom.Color256()))
			}

			fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
		}
	}
	if fg != -1 || bg != -1 {
		c.renderBuf.WriteString("\033[0m")
	}

	writeChunks(w, []byte(c.renderBuf.String()))
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	// Border positions (1-based terminal coordinates)
	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	rule := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, rule)
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, rule)
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, rule)
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, rule)
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// TerminalWidth returns the render area's column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the render area's row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to a 1-based position (col, row)
// relative to the render area. Use with ChunkWriter, which applies the offset.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, int(math.Floor(float64(py)/2)) + 1
}

// TerminalToLogical converts an absolute 0-based terminal cell (as reported
// by the mouse) to the logical coordinates of that cell's centre.
// ok is false when the cell lies outside the render area.
func (c *Canvas) TerminalToLogical(col, row int) (x, y float64, ok bool) {
	col -= c.offsetCol
	row -= c.offsetRow
	if col < 0 || col >= c.termWidth || row < 0 || row >= c.termHeight {
		return 0, 0, false
	}
	x = (float64(col) + 0.5) / c.scaleX
	y = (float64(row)*2 + 1) / c.scaleY
	return x, y, true
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
