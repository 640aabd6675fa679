package object

import "testing"

func TestParticleDecay(t *testing.T) {
	p := NewParticle(10, 500, 3, 40, 2)
	startY := p.Y

	for i := 1; i < 40; i++ {
		if p.Step() {
			t.Fatalf("particle expired early at step %d", i)
		}
	}
	if !p.Step() {
		t.Fatalf("particle still alive after 40 steps (life=%d)", p.Life)
	}
	if got, want := startY-p.Y, 40*2.0; got != want {
		t.Fatalf("rose %f, want %f", got, want)
	}
}

func TestParticleText(t *testing.T) {
	p := NewParticle(0, 0, 5, 1, 1)
	if p.Text() != "+5" {
		t.Errorf("Text() = %q, want +5", p.Text())
	}
	if p.Tier() != TierGold {
		t.Errorf("Tier() = %v, want gold", p.Tier())
	}
}

func TestPoolRemovesAfterExactLifetime(t *testing.T) {
	pool := NewPool(4)
	pool.Emit(NewParticle(0, 100, 1, 40, 2))

	for i := 0; i < 39; i++ {
		pool.Age()
	}
	if pool.Len() != 1 {
		t.Fatalf("Len() = %d after 39 steps, want 1", pool.Len())
	}
	var y float64
	pool.Each(func(p Particle) { y = p.Y })
	if y != 100-39*2 {
		t.Fatalf("y = %f after 39 steps, want %f", y, 100-39*2.0)
	}

	pool.Age()
	if pool.Len() != 0 {
		t.Fatalf("Len() = %d after 40 steps, want 0", pool.Len())
	}
}

func TestPoolReusesTombstones(t *testing.T) {
	pool := NewPool(0)
	pool.Emit(NewParticle(0, 0, 1, 1, 0))
	pool.Emit(NewParticle(0, 0, 3, 5, 0))
	pool.Age() // first particle expires

	pool.Emit(NewParticle(0, 0, 5, 5, 0))
	if len(pool.slots) != 2 {
		t.Fatalf("arena grew to %d slots, want tombstone reuse (2)", len(pool.slots))
	}
	if pool.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", pool.Len())
	}

	seen := map[int]bool{}
	pool.Each(func(p Particle) { seen[p.Value] = true })
	if !seen[3] || !seen[5] || seen[1] {
		t.Fatalf("unexpected live set: %v", seen)
	}
}

func TestPoolDropsExpiredEmit(t *testing.T) {
	pool := NewPool(1)
	pool.Emit(NewParticle(0, 0, 1, 0, 2))
	if pool.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", pool.Len())
	}
}

func TestPoolClear(t *testing.T) {
	pool := NewPool(2)
	for i := 0; i < 5; i++ {
		pool.Emit(NewParticle(0, 0, 1, 10, 1))
	}
	pool.Clear()
	if pool.Len() != 0 {
		t.Fatalf("Len() = %d after Clear, want 0", pool.Len())
	}
	calls := 0
	pool.Each(func(Particle) { calls++ })
	if calls != 0 {
		t.Fatalf("Each visited %d particles after Clear", calls)
	}
}
