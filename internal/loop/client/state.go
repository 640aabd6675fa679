package client

import (
	"time"

	"github.com/tomz197/fishnet/internal/draw"
	"github.com/tomz197/fishnet/internal/input"
)

// GameState represents the current screen for a client.
type GameState int

const (
	GameStateStart    GameState = iota // Title screen
	GameStatePlaying                   // Session on screen (running, paused or over)
	GameStateHelp                      // Help overlay; the session is paused
	GameStateShutdown                  // Server is shutting down
)

// ClientState holds per-connection presentation state. The game itself
// lives in the client's session.
type ClientState struct {
	Input         input.Input
	GameState     GameState         // This client's screen
	prevGameState GameState         // Screen drawn last frame
	termSizeFunc  draw.TermSizeFunc // Function to get terminal size
	Running       bool              // Client loop running
	delta         time.Duration     // Frame delta time
	shutdownTimer float64           // Countdown before auto-disconnect on shutdown
	isInactive    bool              // Whether the client is in inactive warning state
	wasInactive   bool              // Inactivity state drawn last frame
}

// NewClientState creates a new initialized client state.
func NewClientState() *ClientState {
	return &ClientState{
		GameState:     GameStateStart,
		prevGameState: GameStateStart,
		Running:       true,
	}
}
