// Package loop provides the game simulation: session state, the per-frame
// update step and the control commands a presentation layer may issue.
//
// A Session is driven by a single caller. Tick and the control methods must
// not be invoked concurrently or re-entrantly.
package loop

import (
	"math/rand"
	"time"

	"github.com/tomz197/fishnet/internal/loop/config"
	"github.com/tomz197/fishnet/internal/object"
)

// Session holds all state for one player's game.
type Session struct {
	tuning config.Tuning
	area   object.SpawnArea
	rng    object.RandSource

	score  int
	lives  int
	speed  float64
	paused bool

	fish      object.Fish
	net       object.Catcher
	particles *object.Pool

	observer func(Event)
}

// Option configures a Session.
type Option func(*Session)

// WithRand sets the random source used for spawning. Defaults to a
// time-seeded math/rand generator.
func WithRand(rng object.RandSource) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithObserver registers fn to be called synchronously for every session
// event. fn must not call back into the session.
func WithObserver(fn func(Event)) Option {
	return func(s *Session) {
		s.observer = fn
	}
}

// NewSession creates a session with the given tuning and starts the first
// game. The caller is expected to have validated the tuning.
func NewSession(tuning config.Tuning, opts ...Option) *Session {
	s := &Session{
		tuning: tuning,
		area: object.SpawnArea{
			Width:       tuning.PlayWidth,
			Height:      tuning.PlayHeight,
			MarginLeft:  tuning.MarginLeft,
			MarginRight: tuning.MarginRight,
		},
		net: object.Catcher{
			Width:  tuning.NetWidth,
			Height: tuning.NetHeight,
		},
		particles: object.NewPool(config.ParticlePoolSize),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Park the net in the middle of the pond until the first pointer update.
	s.net.CenterOn(tuning.PlayWidth/2, tuning.PlayHeight/2)

	s.reset()
	return s
}

// reset puts the session into a fresh game without notifying observers.
func (s *Session) reset() {
	s.score = 0
	s.speed = s.tuning.BaseSpeed
	s.lives = s.tuning.MaxLives
	s.paused = false
	s.particles.Clear()
	s.respawn()
}

// respawn replaces the current fish.
func (s *Session) respawn() {
	s.fish = object.SpawnFish(s.rng, s.area, s.tuning.FishSize)
}

// emit notifies the observer, if any.
func (s *Session) emit(ev Event) {
	if s.observer != nil {
		s.observer(ev)
	}
}
