package loop

import "github.com/tomz197/fishnet/internal/object"

// Tick advances the session by exactly one frame.
//
// Floating score text ages every frame, including while paused or after the
// game has ended. The fish only moves while the game is running.
func (s *Session) Tick() {
	s.particles.Age()

	if s.paused || s.Ended() {
		return
	}

	s.fish.Y += s.speed

	if s.fish.Y > s.tuning.PlayHeight {
		s.missFish()
		return
	}

	if overlaps(s.fish, s.tuning.FishSize, s.net) {
		s.catchFish()
	}
}

// missFish costs a heart. The last heart ends the game and leaves the fish
// where it fell.
func (s *Session) missFish() {
	missed := s.fish
	s.lives--
	s.emit(Event{Type: EventMiss, Kind: missed.Kind, Score: s.score, Lives: s.lives})

	if s.lives <= 0 {
		s.lives = 0
		s.emit(Event{Type: EventGameOver, Kind: missed.Kind, Score: s.score, Lives: 0})
		return
	}
	s.respawn()
}

// catchFish scores the current fish, speeds up the pond and drops a new fish.
func (s *Session) catchFish() {
	caught := s.fish
	size := s.tuning.FishSize

	s.score += caught.Value
	s.particles.Emit(object.NewParticle(
		caught.X+size/2,
		caught.Y,
		caught.Value,
		s.tuning.ParticleLife,
		s.tuning.ParticleRise,
	))
	s.speed += s.tuning.SpeedStep
	s.respawn()

	s.emit(Event{Type: EventCatch, Kind: caught.Kind, Value: caught.Value, Score: s.score, Lives: s.lives})
}
