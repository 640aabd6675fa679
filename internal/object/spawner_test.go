package object

import (
	"math"
	"math/rand"
	"testing"
)

// scriptedRand replays a fixed sequence of samples.
type scriptedRand struct {
	vals []float64
	i    int
}

func (r *scriptedRand) Float64() float64 {
	v := r.vals[r.i%len(r.vals)]
	r.i++
	return v
}

var testArea = SpawnArea{Width: 1280, Height: 720, MarginLeft: 50, MarginRight: 50}

func TestKindForTableBoundaries(t *testing.T) {
	tests := []struct {
		r    float64
		want Kind
	}{
		{0, Carp},
		{0.4999, Carp},
		{0.5, Grasscarp},
		{0.7499, Grasscarp},
		{0.75, Catfish},
		{0.8999, Catfish},
		{0.9, Beta},
		{0.9999, Beta},
		{math.NaN(), Carp},
		{-0.3, Carp},
		{1.0, Beta},
		{7, Beta},
	}
	for _, tt := range tests {
		if got := KindFor(tt.r); got != tt.want {
			t.Errorf("KindFor(%v) = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestKindValues(t *testing.T) {
	want := map[Kind]int{Carp: 1, Grasscarp: 3, Catfish: 3, Beta: 5}
	for k, v := range want {
		if got := k.Value(); got != v {
			t.Errorf("%v.Value() = %d, want %d", k, got, v)
		}
	}
	if got := Kind(42).Value(); got != 0 {
		t.Errorf("unknown kind value = %d, want 0", got)
	}
}

func TestSpawnFishPosition(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const size = 100.0
	maxX := testArea.Width - testArea.MarginRight - size

	for i := 0; i < 10000; i++ {
		f := SpawnFish(rng, testArea, size)
		if f.X < testArea.MarginLeft || f.X > maxX {
			t.Fatalf("spawn x=%f outside [%f, %f]", f.X, testArea.MarginLeft, maxX)
		}
		if f.Y != -size {
			t.Fatalf("spawn y=%f, want %f", f.Y, -size)
		}
		if f.Value != f.Kind.Value() {
			t.Fatalf("value %d does not match kind %v", f.Value, f.Kind)
		}
	}
}

func TestSpawnFishUsesSamplesInOrder(t *testing.T) {
	rng := &scriptedRand{vals: []float64{0.5, 0.95}}
	f := SpawnFish(rng, testArea, 100)

	wantX := 50 + 0.5*(1280-50-100-50)
	if f.X != wantX {
		t.Errorf("x = %f, want %f", f.X, wantX)
	}
	if f.Kind != Beta || f.Value != 5 {
		t.Errorf("got %v (%d), want beta (5)", f.Kind, f.Value)
	}
}

func TestSpawnFishNarrowAreaFallsBackToMarginLeft(t *testing.T) {
	narrow := SpawnArea{Width: 120, Height: 720, MarginLeft: 50, MarginRight: 50}
	rng := &scriptedRand{vals: []float64{0.9, 0.1}}

	f := SpawnFish(rng, narrow, 100)
	if f.X != narrow.MarginLeft {
		t.Fatalf("x = %f, want margin %f", f.X, narrow.MarginLeft)
	}
	if math.IsNaN(f.X) || math.IsNaN(f.Y) {
		t.Fatalf("spawn produced NaN position: %+v", f)
	}
	// Both samples are still consumed: the kind comes from the second one.
	if f.Kind != Carp {
		t.Fatalf("kind = %v, want carp", f.Kind)
	}
}

func TestSpawnFishClampsBadSamples(t *testing.T) {
	rng := &scriptedRand{vals: []float64{1.5, math.NaN()}}
	f := SpawnFish(rng, testArea, 100)

	maxX := testArea.Width - testArea.MarginRight - 100
	if f.X < testArea.MarginLeft || f.X > maxX {
		t.Fatalf("x = %f outside spawn interval", f.X)
	}
	if f.Kind != Carp {
		t.Fatalf("kind = %v, want carp for NaN sample", f.Kind)
	}
}

func TestSpawnDistribution(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	const n = 100000
	counts := map[Kind]int{}
	for i := 0; i < n; i++ {
		counts[SpawnFish(rng, testArea, 100).Kind]++
	}

	want := map[Kind]float64{Carp: 0.50, Grasscarp: 0.25, Catfish: 0.15, Beta: 0.10}
	for k, p := range want {
		got := float64(counts[k]) / n
		// Five standard deviations of a binomial proportion at n=100k is
		// below 0.008 for every p here.
		if math.Abs(got-p) > 0.01 {
			t.Errorf("%v frequency = %.4f, want %.2f ± 0.01", k, got, p)
		}
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		value int
		want  Tier
	}{
		{1, TierDefault},
		{3, TierBlue},
		{5, TierGold},
		{0, TierDefault},
	}
	for _, tt := range tests {
		if got := TierFor(tt.value); got != tt.want {
			t.Errorf("TierFor(%d) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
