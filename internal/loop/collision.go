package loop

import (
	"github.com/tomz197/fishnet/internal/object"
	"github.com/tomz197/fishnet/internal/physics"
)

// overlaps reports whether the fish's sprite box intersects the net.
// Touching edges do not count.
func overlaps(fish object.Fish, size float64, net object.Catcher) bool {
	return physics.RectsOverlap(fish.Bounds(size), net.Bounds())
}
