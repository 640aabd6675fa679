package object

import "github.com/tomz197/fishnet/internal/physics"

// Catcher is the player's net. Its position is written by the input layer
// and only read by the simulation.
type Catcher struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Bounds returns the net's current effective bounding box.
func (c Catcher) Bounds() physics.Rect {
	return physics.Rect{X: c.X, Y: c.Y, W: c.Width, H: c.Height}
}

// CenterOn positions the net so that its centre lies at (x, y).
func (c *Catcher) CenterOn(x, y float64) {
	c.X = x - c.Width/2
	c.Y = y - c.Height/2
}
