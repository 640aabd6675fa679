// Package object defines the entities of the pond: the falling fish, the net
// that catches it and the floating score text left behind by a catch.
package object

import "math"

// RandSource supplies uniform samples in [0, 1).
// *math/rand.Rand satisfies it.
type RandSource interface {
	Float64() float64
}

// unit clamps a sample into [0, 1).
func unit(r float64) float64 {
	if math.IsNaN(r) || r < 0 {
		return 0
	}
	if r >= 1 {
		return math.Nextafter(1, 0)
	}
	return r
}

// Tier is the colour class of a score value.
type Tier int

const (
	TierDefault Tier = iota // 1 point
	TierBlue                // 3 points
	TierGold                // 5 points
)

// TierFor returns the colour tier for a point value.
func TierFor(value int) Tier {
	switch value {
	case 5:
		return TierGold
	case 3:
		return TierBlue
	default:
		return TierDefault
	}
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierGold:
		return "gold"
	case TierBlue:
		return "blue"
	default:
		return "default"
	}
}
