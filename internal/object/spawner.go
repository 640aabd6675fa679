package object

// SpawnArea describes where new fish may appear: the play area and the
// decorative columns on either side that fish never spawn under.
type SpawnArea struct {
	Width       float64
	Height      float64
	MarginLeft  float64
	MarginRight float64
}

// SpawnFish creates the next fish just above the visible area.
//
// The x position is uniform in [MarginLeft, Width-MarginRight-size]. When the
// area is too narrow for that interval the fish is placed at MarginLeft.
// The kind is drawn from a second sample. SpawnFish has no side effects; the
// caller replaces its current fish with the result.
func SpawnFish(rng RandSource, area SpawnArea, size float64) Fish {
	minX := area.MarginLeft
	maxX := area.Width - area.MarginRight - size

	x := minX
	if span := maxX - minX; span > 0 {
		x = minX + unit(rng.Float64())*span
	} else {
		// Every spawn consumes exactly two samples.
		rng.Float64()
	}

	kind := KindFor(rng.Float64())
	return Fish{
		X:     x,
		Y:     -size,
		Kind:  kind,
		Value: kind.Value(),
	}
}
