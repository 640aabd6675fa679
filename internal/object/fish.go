package object

import "github.com/tomz197/fishnet/internal/physics"

// Kind identifies the species of a falling fish.
type Kind int

const (
	Carp Kind = iota
	Grasscarp
	Catfish
	Beta
)

// kindWeight is one row of the cumulative spawn table.
type kindWeight struct {
	upper float64 // exclusive upper bound of the cumulative probability
	kind  Kind
}

// kindTable is ordered by cumulative probability: 50% carp, 25% grass carp,
// 15% catfish, 10% beta.
var kindTable = [...]kindWeight{
	{upper: 0.50, kind: Carp},
	{upper: 0.75, kind: Grasscarp},
	{upper: 0.90, kind: Catfish},
	{upper: 1.00, kind: Beta},
}

// kindValues maps each kind to the points it is worth.
var kindValues = [...]int{
	Carp:      1,
	Grasscarp: 3,
	Catfish:   3,
	Beta:      5,
}

// KindFor picks the kind selected by a single sample r in [0, 1).
func KindFor(r float64) Kind {
	r = unit(r)
	for _, w := range kindTable {
		if r < w.upper {
			return w.kind
		}
	}
	return kindTable[len(kindTable)-1].kind
}

// Value returns the points awarded for catching a fish of this kind.
func (k Kind) Value() int {
	if k < Carp || k > Beta {
		return 0
	}
	return kindValues[k]
}

// String returns the species name.
func (k Kind) String() string {
	switch k {
	case Carp:
		return "carp"
	case Grasscarp:
		return "grasscarp"
	case Catfish:
		return "catfish"
	case Beta:
		return "beta"
	default:
		return "unknown"
	}
}

// Fish is the single falling target. Y may be negative while the fish is
// still above the visible area.
type Fish struct {
	X, Y  float64
	Kind  Kind
	Value int
}

// Bounds returns the fish's square bounding box for the given sprite size.
func (f Fish) Bounds(size float64) physics.Rect {
	return physics.Rect{X: f.X, Y: f.Y, W: size, H: size}
}
