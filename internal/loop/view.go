package loop

import "github.com/tomz197/fishnet/internal/object"

// View is the read-only state a renderer draws from.
type View interface {
	Score() int
	Lives() int
	MaxLives() int
	Paused() bool
	Ended() bool
	Speed() float64
	Fish() object.Fish
	FishSize() float64
	Catcher() object.Catcher
	Particles(fn func(object.Particle))
	PlayArea() (width, height float64)
	Margins() (left, right float64)
}

// Controller is the set of commands an input layer may issue.
type Controller interface {
	SetCatcherPosition(x, y float64)
	Tick()
	Restart()
	Pause()
	Resume()
	Toggle()
}

// Compile-time checks that Session serves both sides of the boundary.
var (
	_ View       = (*Session)(nil)
	_ Controller = (*Session)(nil)
)

// Score returns the points earned this game.
func (s *Session) Score() int { return s.score }

// Lives returns the hearts remaining.
func (s *Session) Lives() int { return s.lives }

// MaxLives returns the hearts a new game starts with.
func (s *Session) MaxLives() int { return s.tuning.MaxLives }

// Paused reports whether the game is paused.
func (s *Session) Paused() bool { return s.paused }

// Ended reports whether all hearts are lost.
func (s *Session) Ended() bool { return s.lives <= 0 }

// Speed returns the fish's fall speed in units per frame.
func (s *Session) Speed() float64 { return s.speed }

// Fish returns the current fish.
func (s *Session) Fish() object.Fish { return s.fish }

// FishSize returns the fish sprite's edge length.
func (s *Session) FishSize() float64 { return s.tuning.FishSize }

// Catcher returns the net.
func (s *Session) Catcher() object.Catcher { return s.net }

// Particles calls fn for each live score text particle.
func (s *Session) Particles(fn func(object.Particle)) { s.particles.Each(fn) }

// PlayArea returns the logical size of the pond.
func (s *Session) PlayArea() (width, height float64) {
	return s.tuning.PlayWidth, s.tuning.PlayHeight
}

// Margins returns the widths of the side columns fish never spawn under.
func (s *Session) Margins() (left, right float64) {
	return s.tuning.MarginLeft, s.tuning.MarginRight
}
