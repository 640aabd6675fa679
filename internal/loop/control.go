package loop

// Restart starts a new game. Valid at any time, including after game over.
func (s *Session) Restart() {
	s.reset()
	s.emit(Event{Type: EventRestart, Score: s.score, Lives: s.lives})
}

// Pause freezes the fish. No-op when already paused or when the game has
// ended.
func (s *Session) Pause() {
	if s.paused || s.Ended() {
		return
	}
	s.paused = true
}

// Resume unfreezes the fish. A session with no hearts left cannot be
// resumed; only Restart recovers it.
func (s *Session) Resume() {
	if s.lives <= 0 {
		return
	}
	s.paused = false
}

// Toggle resumes a paused game, otherwise pauses it.
func (s *Session) Toggle() {
	if s.paused {
		s.Resume()
		return
	}
	s.Pause()
}

// SetCatcherPosition moves the net's top-left corner. Clamping and pointer
// centring are the caller's concern.
func (s *Session) SetCatcherPosition(x, y float64) {
	s.net.X = x
	s.net.Y = y
}
