package physics

import "testing"

func TestRectsOverlapBoundaries(t *testing.T) {
	net := Rect{X: 200, Y: 300, W: 180, H: 160}
	tests := []struct {
		name string
		fish Rect
		want bool
	}{
		{"left edge touching", Rect{X: 100, Y: 300, W: 100, H: 100}, false},
		{"left edge overlapping by one", Rect{X: 101, Y: 300, W: 100, H: 100}, true},
		{"right edge touching", Rect{X: 380, Y: 300, W: 100, H: 100}, false},
		{"right edge overlapping by one", Rect{X: 379, Y: 300, W: 100, H: 100}, true},
		{"top edge touching", Rect{X: 250, Y: 200, W: 100, H: 100}, false},
		{"top edge overlapping by one", Rect{X: 250, Y: 201, W: 100, H: 100}, true},
		{"bottom edge touching", Rect{X: 250, Y: 460, W: 100, H: 100}, false},
		{"bottom edge overlapping by one", Rect{X: 250, Y: 459, W: 100, H: 100}, true},
		{"inside", Rect{X: 250, Y: 320, W: 100, H: 100}, true},
		{"far away", Rect{X: -1000, Y: -1000, W: 100, H: 100}, false},
		{"corner touching", Rect{X: 100, Y: 200, W: 100, H: 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RectsOverlap(tt.fish, net); got != tt.want {
				t.Errorf("RectsOverlap(%+v, net) = %v, want %v", tt.fish, got, tt.want)
			}
			if got := net.Overlaps(tt.fish); got != tt.want {
				t.Errorf("overlap is not symmetric for %+v", tt.fish)
			}
		})
	}
}

