package object

import "strconv"

// Particle is the floating "+N" text left behind by a catch.
type Particle struct {
	X, Y  float64 // Text anchor
	Value int     // Points shown
	Life  int     // Frames remaining
	Rise  float64 // Upward drift per frame
}

// NewParticle creates score text for a catch worth value points.
func NewParticle(x, y float64, value, life int, rise float64) Particle {
	return Particle{
		X:     x,
		Y:     y,
		Value: value,
		Life:  life,
		Rise:  rise,
	}
}

// Step drifts the particle up by one frame and ages it.
// Returns true once the particle has expired.
func (p *Particle) Step() bool {
	p.Y -= p.Rise
	p.Life--
	return p.Life <= 0
}

// Text returns the label to render.
func (p Particle) Text() string {
	return "+" + strconv.Itoa(p.Value)
}

// Tier returns the colour tier of the particle's value.
func (p Particle) Tier() Tier {
	return TierFor(p.Value)
}

// particleSlot is one arena cell. Dead slots are tombstones waiting on the
// free list.
type particleSlot struct {
	p     Particle
	alive bool
}

// Pool is an arena of particles. Expired particles are tombstoned in place
// and their slots recycled, so aging never reallocates.
// Iteration order is unspecified.
type Pool struct {
	slots []particleSlot
	free  []int // Indices of tombstoned slots
	live  int
}

// NewPool creates an empty pool with room for capacity particles before it
// has to grow.
func NewPool(capacity int) *Pool {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool{
		slots: make([]particleSlot, 0, capacity),
		free:  make([]int, 0, capacity),
	}
}

// Emit adds a particle, reusing a tombstoned slot when one is available.
// Particles created already expired are dropped.
func (pl *Pool) Emit(p Particle) {
	if p.Life <= 0 {
		return
	}
	if n := len(pl.free); n > 0 {
		idx := pl.free[n-1]
		pl.free = pl.free[:n-1]
		pl.slots[idx] = particleSlot{p: p, alive: true}
	} else {
		pl.slots = append(pl.slots, particleSlot{p: p, alive: true})
	}
	pl.live++
}

// Age advances every live particle by one frame and tombstones the ones
// that expire.
func (pl *Pool) Age() {
	for i := range pl.slots {
		s := &pl.slots[i]
		if !s.alive {
			continue
		}
		if s.p.Step() {
			s.alive = false
			pl.free = append(pl.free, i)
			pl.live--
		}
	}
}

// Each calls fn for every live particle.
func (pl *Pool) Each(fn func(Particle)) {
	for i := range pl.slots {
		if pl.slots[i].alive {
			fn(pl.slots[i].p)
		}
	}
}

// Len returns the number of live particles.
func (pl *Pool) Len() int {
	return pl.live
}

// Clear removes all particles, keeping the allocated arena.
func (pl *Pool) Clear() {
	pl.slots = pl.slots[:0]
	pl.free = pl.free[:0]
	pl.live = 0
}
