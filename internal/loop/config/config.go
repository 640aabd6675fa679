// Package config centralizes all tunable game parameters.
package config

import "time"

// Default play area in logical units. Rendering scales it to the terminal.
const (
	PlayWidth  = 1280.0
	PlayHeight = 720.0
)

// Sprites
const (
	FishSize  = 100.0
	NetWidth  = 180.0
	NetHeight = 160.0
)

// Decorative side columns fish never spawn under.
const (
	MarginLeft  = 50.0
	MarginRight = 50.0
)

// Difficulty. Speeds are logical units per frame.
const (
	BaseSpeed = 3.0
	SpeedStep = 0.2
	MaxLives  = 3
)

// Floating score text
const (
	ParticleLife = 40  // Frames
	ParticleRise = 2.0 // Units per frame
)

// Portrait mood thresholds (score)
const (
	MoodExcited  = 15
	MoodThrilled = 30
	MoodEcstatic = 50
)

// Keyboard steering
const (
	NetKeyStep = 24.0 // Units per frame while an arrow key is held
)

// Shutdown
const (
	ShutdownDisplaySeconds = 10.0 // Seconds to show shutdown message before auto-disconnect
)

// Inactivity
const (
	InactivityWarnUser       = 90  // Seconds
	InactivityDisconnectUser = 120 // Seconds
)

// Client rendering. All tuning constants assume this fixed frame rate.
const (
	ClientTargetFPS       = 60
	ClientTargetFrameTime = time.Second / ClientTargetFPS
)

// Max render resolution (terminal cells). Larger terminals get a centred,
// bordered play area.
const (
	MaxTermWidth  = 200
	MaxTermHeight = 60
)

// Particle arena capacity hint
const (
	ParticlePoolSize = 16
)
